package config

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 32
	ButtonX      = 20
	ButtonY      = 40

	// Progress bar
	BarX      = 20
	BarHeight = 24
	BarMargin = 60

	// Control steps
	SeekStep    = 1000 // ms
	SpeedStep   = 0.25
	MaxSpeed    = 4.0
	SpacingStep = 0.1
	MinSpacing  = 0.3
	MaxSpacing  = 3.0
	DroneStep   = 100
	MinDrones   = 100
	MaxDrones   = 5000
)
