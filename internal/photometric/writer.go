package photometric

import (
	"os"

	"github.com/h44z/eulumies"
)

// WriteIES serializes a Table back to an LM-63-2002 IES file, using
// eulumies.IES.Export as the writer (spec §8, testable property 1).
// Export only writes to a path, so the encoded bytes are written to a
// scratch file and read back, mirroring ParseIES's own file-spooling
// shape. The multiplier is always written as 1 and the candela matrix
// carries Table's already-scaled values, so re-parsing the output
// yields the same numeric content without needing to recover the
// original file's raw, pre-multiplier values.
func WriteIES(t *Table) ([]byte, error) {
	raw := &eulumies.IES{
		Format: eulumies.IESFormatLM_63_2002,
		Keywords: map[string]string{
			"TEST":      "isolux round-trip",
			"TESTLAB":   "isolux",
			"ISSUEDATE": "unknown",
			"MANUFAC":   "isolux",
		},
		Tilt:                   eulumies.IESTiltNone,
		NumberLamps:            t.NumLamps,
		LumensPerLamp:          t.LumensPerLamp,
		CandelaMultiplier:      1,
		NumberVerticalAngles:   t.NumVerticalAngles,
		NumberHorizontalAngles: t.NumHorizontalAngles,
		PhotometricType:        int(t.PhotometricType),
		UnitsType:              t.UnitsType,
		LuminaireWidth:         t.Width,
		LuminaireLength:        t.Length,
		LuminaireHeight:        t.Height,
		BallastFactor:          t.BallastFactor,
		FutureUse:              1,
		InputWatts:             t.InputWatts,
		VerticalAngles:         t.VerticalAngles,
		HorizontalAngles:       t.HorizontalAngles,
		CandelaValues:          t.Candela,
	}

	tmp, err := os.CreateTemp("", "isolux-ies-out-*.ies")
	if err != nil {
		return nil, &InternalError{Cause: err}
	}
	path := tmp.Name()
	tmp.Close()
	defer os.Remove(path)

	if err := raw.Export(path); err != nil {
		return nil, &InternalError{Cause: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InternalError{Cause: err}
	}
	return data, nil
}
