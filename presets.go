package euclid

//-----------------------------------------------------------------------------
// Traditional presets
//-----------------------------------------------------------------------------

// Preset enumerates well-known traditional rhythms expressible as Euclidean
// patterns E(pulses, steps). Every preset is a valid (steps, pulses) pair, so
// constructing one cannot fail.
type Preset int

const (
	// Tresillo is the Cuban tresillo, E(3,8): x..x..x.
	Tresillo Preset = iota
	// WestAfricanBell is the bell timeline E(5,8): x.xx.xx.
	WestAfricanBell
	// Persian is the Persian rhythm E(5,12): x..x.x..x.x.
	Persian
	// BossaNova is the Brazilian bossa nova E(7,16): x..x.x.x..x.x.x.
	BossaNova
	// RockFunk is the dense rock/funk pattern E(7,8).
	RockFunk
	// Cinquillo is the Afro-Cuban cinquillo spread over a 16-step bar, E(5,16).
	Cinquillo
	// Darbuka is the Persian darbuka pattern E(7,12).
	Darbuka
	// Polyrhythm16 is a complex 16-step polyrhythm, E(9,16).
	Polyrhythm16
)

// presetShapes maps each Preset to its (steps, pulses) pair.
var presetShapes = map[Preset][2]int{
	Tresillo:        {8, 3},
	WestAfricanBell: {8, 5},
	Persian:         {12, 5},
	BossaNova:       {16, 7},
	RockFunk:        {8, 7},
	Cinquillo:       {16, 5},
	Darbuka:         {12, 7},
	Polyrhythm16:    {16, 9},
}

// presetNames maps each Preset to its conventional name.
var presetNames = map[Preset]string{
	Tresillo:        "Cuban tresillo",
	WestAfricanBell: "West African bell",
	Persian:         "Persian rhythm",
	BossaNova:       "Brazilian bossa nova",
	RockFunk:        "Rock/funk pattern",
	Cinquillo:       "Afro-Cuban cinquillo",
	Darbuka:         "Persian darbuka",
	Polyrhythm16:    "Complex polyrhythm",
}

// Presets lists every defined Preset in declaration order, handy for
// iterating demos and tables.
var Presets = []Preset{
	Tresillo,
	WestAfricanBell,
	Persian,
	BossaNova,
	RockFunk,
	Cinquillo,
	Darbuka,
	Polyrhythm16,
}

// Name returns the preset's conventional name, or "unknown" for values
// outside the defined set.
// Complexity: O(1).
func (pr Preset) Name() string {
	if name, ok := presetNames[pr]; ok {
		return name
	}

	return "unknown"
}

// Shape returns the preset's (steps, pulses) pair. Unknown presets report
// (0, 0).
// Complexity: O(1).
func (pr Preset) Shape() (steps, pulses int) {
	shape := presetShapes[pr]

	return shape[0], shape[1]
}

// Pattern builds the preset's canonical rotation-0 pattern. Unknown preset
// values yield a nil Pattern.
// Complexity: same as Rhythm.
func (pr Preset) Pattern() Pattern {
	steps, pulses := pr.Shape()
	// Preset shapes are valid by construction; only out-of-range Preset
	// values hit the error branch.
	p, err := Rhythm(steps, pulses, 0)
	if err != nil {
		return nil
	}

	return p
}
