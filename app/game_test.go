package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/trajectory/app"
	"github.com/lixenwraith/trajectory/app/mocks"
	"github.com/lixenwraith/trajectory/core"
	"github.com/lixenwraith/trajectory/session"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(192, 54)
	return screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func tickUntilFinished(t *testing.T, g *app.Game) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		g.Tick()
		if g.Session().Phase() == core.PhaseFinished {
			return
		}
	}
	t.Fatal("run did not finish")
}

func TestGameScoredRunCues(t *testing.T) {
	ctrl := gomock.NewController(t)
	screen := newScreen(t)
	defer screen.Fini()

	cues := mocks.NewMockCues(ctrl)
	gomock.InOrder(
		cues.EXPECT().PlayLaunch().Times(1),
		cues.EXPECT().PlayScore().Times(1),
	)

	g := app.NewGame(screen, session.DefaultSettings(), cues)
	if !g.HandleEvent(key(tcell.KeyEnter)) {
		t.Fatal("Enter must not close the game")
	}
	tickUntilFinished(t, g)

	// Further ticks on a finished run stay silent
	g.Tick()
	g.Tick()
}

func TestGameMissCues(t *testing.T) {
	ctrl := gomock.NewController(t)
	screen := newScreen(t)
	defer screen.Fini()

	cues := mocks.NewMockCues(ctrl)
	cues.EXPECT().PlayLaunch()
	cues.EXPECT().PlayMiss()

	s := session.DefaultSettings()
	s.ScoreThresholdM = 0.01
	g := app.NewGame(screen, s, cues)

	g.HandleEvent(key(tcell.KeyEnter))
	tickUntilFinished(t, g)
	if g.Session().Outcome() != core.OutcomeOutOfBounds {
		t.Errorf("Expected OutOfBounds, got %s", g.Session().Outcome())
	}
}

func TestGameClickStartAndReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	screen := newScreen(t)
	defer screen.Fini()

	cues := mocks.NewMockCues(ctrl)
	cues.EXPECT().PlayLaunch().Times(2)
	cues.EXPECT().PlayScore().Times(2)

	g := app.NewGame(screen, session.DefaultSettings(), cues)

	// Cell (96,46) on a 192x54 grid is the middle of the simulate button
	click := func(x, y int) {
		g.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
		g.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	}

	click(96, 46)
	if g.Session().Phase() != core.PhaseRunning {
		t.Fatalf("Expected Running after click, got %s", g.Session().Phase())
	}
	tickUntilFinished(t, g)

	// Reset button spans cells 108..127
	click(118, 46)
	if g.Session().Phase() != core.PhaseConfiguring {
		t.Fatalf("Expected Configuring after reset, got %s", g.Session().Phase())
	}

	click(96, 46)
	tickUntilFinished(t, g)
}

func TestGameToggleMute(t *testing.T) {
	ctrl := gomock.NewController(t)
	screen := newScreen(t)
	defer screen.Fini()

	cues := mocks.NewMockCues(ctrl)
	gomock.InOrder(
		cues.EXPECT().ToggleMute().Return(true),
		cues.EXPECT().ToggleMute().Return(false),
	)

	g := app.NewGame(screen, session.DefaultSettings(), cues)
	g.HandleEvent(key(tcell.KeyCtrlS))
	g.HandleEvent(key(tcell.KeyCtrlS))

	if g.Session().Phase() != core.PhaseConfiguring {
		t.Errorf("Mute toggle must not reach the session, phase %s", g.Session().Phase())
	}
}

func TestGameCloseKeys(t *testing.T) {
	for _, k := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ} {
		t.Run(tcell.KeyNames[k], func(t *testing.T) {
			screen := newScreen(t)
			defer screen.Fini()

			g := app.NewGame(screen, session.DefaultSettings(), nil)
			if g.HandleEvent(key(k)) {
				t.Error("Expected close key to end the game")
			}
		})
	}
}

func TestGameRunStopsOnClose(t *testing.T) {
	screen := newScreen(t)
	g := app.NewGame(screen, session.DefaultSettings(), nil)

	errCh := make(chan error, 1)
	go func() { errCh <- g.Run(context.Background()) }()

	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after close key")
	}
}

func TestGameRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t)
	g := app.NewGame(screen, session.DefaultSettings(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- g.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestGameFractionalFrameRate(t *testing.T) {
	tests := []struct {
		name string
		rate float64
	}{
		{"below one", 0.5},
		{"ntsc", 59.94},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := session.DefaultSettings()
			settings.FrameRate = tt.rate
			if err := settings.Validate(); err != nil {
				t.Fatalf("Validate rejected %v: %v", tt.rate, err)
			}

			screen := newScreen(t)
			g := app.NewGame(screen, settings, nil)
			g.HandleEvent(key(tcell.KeyEnter))
			g.Tick()

			ctx, cancel := context.WithCancel(context.Background())
			errCh := make(chan error, 1)
			go func() { errCh <- g.Run(ctx) }()
			time.Sleep(20 * time.Millisecond)
			cancel()

			select {
			case err := <-errCh:
				if err != nil {
					t.Errorf("Run returned %v", err)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("Run did not return after cancel")
			}
		})
	}
}
