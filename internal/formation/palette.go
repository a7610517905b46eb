package formation

// Palette holds the named light colours used by the procedural formations.
type Palette struct {
	Blue    Color
	Yellow  Color
	Black   Color
	Green   Color
	Red     Color
	White   Color
	Drone   Color
	Magenta Color
}

// DefaultPalette returns the show colours: the five ring colours plus
// neutral white, the cyan drone light and the magenta helix strand.
func DefaultPalette() Palette {
	return Palette{
		Blue:    MustParseColor("#0081C8"),
		Yellow:  MustParseColor("#FCB131"),
		Black:   MustParseColor("#000000"),
		Green:   MustParseColor("#00A651"),
		Red:     MustParseColor("#EE334E"),
		White:   MustParseColor("#FFFFFF"),
		Drone:   MustParseColor("#00FFFF"),
		Magenta: MustParseColor("#FF00FF"),
	}
}
