package parameter

import "time"

// Audio
const (
	AudioSampleRate   = 44100
	AudioMasterVolume = 0.5

	// Launch: rising sweep
	LaunchSoundDuration = 220 * time.Millisecond
	LaunchSoundAttack   = 10 * time.Millisecond
	LaunchSoundRelease  = 120 * time.Millisecond
	LaunchSoundFromHz   = 220.0
	LaunchSoundToHz     = 660.0

	// Score: two-note chime
	ScoreSoundNote1Duration = 120 * time.Millisecond
	ScoreSoundNote2Duration = 320 * time.Millisecond
	ScoreSoundAttack        = 5 * time.Millisecond
	ScoreSoundNote1Release  = 40 * time.Millisecond
	ScoreSoundNote2Release  = 260 * time.Millisecond
	ScoreSoundNote1Hz       = 987.77  // B5
	ScoreSoundNote2Hz       = 1318.51 // E6

	// Miss: falling saw buzz
	MissSoundDuration = 250 * time.Millisecond
	MissSoundAttack   = 5 * time.Millisecond
	MissSoundRelease  = 150 * time.Millisecond
	MissSoundFromHz   = 140.0
	MissSoundToHz     = 70.0
)
