package photometric

// PhotometricType enumerates the IES photometric-type header field.
// Only TypeC is accepted by ParseIES (spec §4.A).
type PhotometricType int

const (
	TypeC PhotometricType = 1
	TypeB PhotometricType = 2
	TypeA PhotometricType = 3
)

// Table is the parsed, in-memory form of a Type C IES photometric
// file: the header scalars plus the vertical/horizontal angle grid
// and its candela values (spec §4.A).
type Table struct {
	NumLamps          int
	LumensPerLamp     float64
	CandelaMultiplier float64
	NumVerticalAngles int
	NumHorizontalAngles int
	PhotometricType   PhotometricType
	UnitsType         int
	Width             float64
	Length            float64
	Height            float64
	BallastFactor     float64
	InputWatts        float64

	// VerticalAngles runs 0 (nadir) to 180 (zenith), strictly increasing.
	VerticalAngles []float64
	// HorizontalAngles runs 0 upward, strictly increasing, and its
	// maximum value determines the Symmetry regime (spec §4.B).
	HorizontalAngles []float64
	// Candela[h][v] is the candela value at HorizontalAngles[h],
	// VerticalAngles[v], already multiplied by CandelaMultiplier.
	Candela [][]float64
}

// MaxHorizontalAngle returns H_max, the symmetry-determining bound
// (spec §4.B).
func (t *Table) MaxHorizontalAngle() float64 {
	if len(t.HorizontalAngles) == 0 {
		return 0
	}
	return t.HorizontalAngles[len(t.HorizontalAngles)-1]
}
