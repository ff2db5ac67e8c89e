package photometric

import (
	"os"

	"github.com/h44z/eulumies"
)

// ParseIES parses a Type C IES LM-63 photometric file. Parsing itself
// is delegated to eulumies, the LM-63 parser/writer found in the
// reference corpus — eulumies.NewIES only reads from a path, the same
// way its own cmd/testing/main.go feeds it a file on disk, so the
// uploaded bytes are spooled to a scratch file first (spec §4.A).
// Everything this function does beyond that call is translating
// eulumies' generic LM-63 struct into this engine's Table and
// enforcing the subset of the standard this system actually supports
// (Type C, TILT=NONE).
func ParseIES(data []byte) (*Table, error) {
	tmp, err := os.CreateTemp("", "isolux-ies-*.ies")
	if err != nil {
		return nil, &InternalError{Cause: err}
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, &InternalError{Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return nil, &InternalError{Cause: err}
	}

	raw, err := eulumies.NewIES(path, false)
	if err != nil {
		return nil, parseErrf("%v", err)
	}

	if raw.Tilt != eulumies.IESTiltNone {
		return nil, parseErrf("unsupported tilt mode %q: only TILT=NONE is accepted", raw.Tilt)
	}

	t := &Table{
		NumLamps:            raw.NumberLamps,
		LumensPerLamp:       raw.LumensPerLamp,
		CandelaMultiplier:   raw.CandelaMultiplier,
		NumVerticalAngles:   raw.NumberVerticalAngles,
		NumHorizontalAngles: raw.NumberHorizontalAngles,
		PhotometricType:     PhotometricType(raw.PhotometricType),
		UnitsType:           raw.UnitsType,
		Width:               raw.LuminaireWidth,
		Length:              raw.LuminaireLength,
		Height:              raw.LuminaireHeight,
		BallastFactor:       raw.BallastFactor,
		InputWatts:          raw.InputWatts,
		VerticalAngles:      raw.VerticalAngles,
		HorizontalAngles:    raw.HorizontalAngles,
	}

	if t.PhotometricType != TypeC {
		return nil, parseErrf("unsupported photometric type %d: only Type C (1) is accepted", t.PhotometricType)
	}
	if t.NumVerticalAngles <= 0 || t.NumHorizontalAngles <= 0 {
		return nil, parseErrf("invalid angle counts: %d vertical, %d horizontal", t.NumVerticalAngles, t.NumHorizontalAngles)
	}
	if err := validateMonotonic(t.VerticalAngles, "vertical"); err != nil {
		return nil, err
	}
	if err := validateMonotonic(t.HorizontalAngles, "horizontal"); err != nil {
		return nil, err
	}

	t.Candela = make([][]float64, len(raw.CandelaValues))
	for h, row := range raw.CandelaValues {
		scaled := make([]float64, len(row))
		for v, c := range row {
			scaled[v] = c * t.CandelaMultiplier
		}
		t.Candela[h] = scaled
	}

	return t, nil
}

func validateMonotonic(angles []float64, label string) error {
	for i := 1; i < len(angles); i++ {
		if angles[i] <= angles[i-1] {
			return parseErrf("%s angles must be strictly increasing, got %v then %v", label, angles[i-1], angles[i])
		}
	}
	return nil
}
