package photometric

import (
	"testing"

	"isolux/internal/models"
)

func TestConvertFieldUnitsRoundTrip(t *testing.T) {
	field := &ScalarField{
		X:      []float64{0, 1},
		Y:      []float64{0},
		Values: [][]float64{{10, 20}},
	}

	convertFieldUnits(field, models.UnitsFootcandle, models.UnitsLux)
	if got, want := field.Values[0][0], 10*models.FootcandlesPerLux; !almostEqual(got, want, 1e-9) {
		t.Errorf("fc->lux = %v, want %v", got, want)
	}

	convertFieldUnits(field, models.UnitsLux, models.UnitsFootcandle)
	if got, want := field.Values[0][0], 10.0; !almostEqual(got, want, 1e-9) {
		t.Errorf("round trip lux->fc = %v, want %v", got, want)
	}
}

func TestConvertFieldUnitsNoop(t *testing.T) {
	field := &ScalarField{Values: [][]float64{{5}}}
	convertFieldUnits(field, models.UnitsLux, models.UnitsLux)
	if field.Values[0][0] != 5 {
		t.Errorf("same-unit conversion mutated value: %v", field.Values[0][0])
	}
}
