package parameter

// Canvas is the virtual drawing surface in pixels; hosts scale it to their output
const (
	CanvasWidth  = 1920.0
	CanvasHeight = 1080.0
)

// Scene Placement (canvas pixels)
const (
	// GroundLineY is the y of the ground baseline launcher and target rest on
	GroundLineY = 800.0

	// LauncherInitialX is the fixed x of the launcher
	LauncherInitialX = 118.0

	// TargetInitialX is the starting x of the target
	TargetInitialX = 1550.0

	// LauncherMaxRaiseMeters limits how far above ground the launcher can be dragged
	LauncherMaxRaiseMeters = 5.35

	// LaunchOffsetY is how far above the launcher anchor the ball leaves
	LaunchOffsetY = 251.0

	// ArrowPivotOffsetX/Y place the angle indicator pivot relative to the launcher anchor
	ArrowPivotOffsetX = 30.0
	ArrowPivotOffsetY = -175.0

	// ArrowLength is the indicator length from pivot to tip
	ArrowLength = 120.0

	// ArrowHitPadding grows the indicator hit box on every side
	ArrowHitPadding = 10.0
)

// Hit Boxes (canvas pixels)
const (
	LauncherWidth  = 120.0
	LauncherHeight = 260.0

	TargetWidth  = 200.0
	TargetHeight = 100.0

	ButtonWidth  = 200.0
	ButtonHeight = 60.0
	StartButtonX = 860.0
	ResetButtonX = 1080.0
	ButtonY      = 900.0

	FieldWidth  = 150.0
	FieldHeight = 40.0
	// FieldRightInset is the distance from the canvas right edge to the field column
	FieldRightInset = 200.0
	SpeedFieldY     = 50.0
	AngleFieldY     = 120.0
	GravityFieldY   = 190.0
)
