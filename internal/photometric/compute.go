package photometric

import (
	"context"
	"fmt"
	"math"

	"isolux/internal/models"
)

// Compute runs the full A -> C -> D -> E -> F pipeline: parse the IES
// file, build the calculation plane, evaluate illuminance across it,
// extract iso-illuminance contours, and assemble the result. ctx is
// checked at each stage boundary; a cancelled context never yields a
// partial result (spec §3, Concurrency & Resource Model).
func Compute(ctx context.Context, iesData []byte, req *models.ComputeRequest) (*models.ComputeResult, error) {
	// A: parse.
	table, err := ParseIES(iesData)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// C: build the calculation plane.
	spacing, err := req.DetailLevel.Spacing()
	if err != nil {
		return nil, &InternalError{Cause: err}
	}
	grid, err := BuildGrid(req.MountingHeight, req.RadiusFactor, spacing)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// D: evaluate the field.
	field, err := ComputeField(ctx, table, grid, req.MountingHeight, req.CalcPlaneHeight, req.LLF,
		req.Rotation.X, req.Rotation.Y, req.Rotation.Z)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	convertFieldUnits(field, req.Units.NativeIlluminanceUnits(), req.TargetIlluminanceUnits)
	sanitizeField(field)

	// E: extract contours for every requested level.
	levels := make([]models.ContourSet, 0, len(req.IsoLevels))
	interval := req.Units.LabelInterval()
	for _, iso := range req.IsoLevels {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		paths := ExtractContours(field, iso.Value)
		labelText := fmt.Sprintf("%.1f %s", iso.Value, req.TargetIlluminanceUnits)

		set := models.ContourSet{
			Value: iso.Value,
			Color: iso.Color,
			Paths: make([][]models.Point, 0, len(paths)),
		}
		for _, p := range paths {
			if len(p) < 2 {
				continue
			}
			set.Paths = append(set.Paths, toModelPoints(p))
			for _, labelPt := range LabelPositions(p, interval) {
				set.Labels = append(set.Labels, models.Label{
					Position: models.Point{X: labelPt.X, Y: labelPt.Y},
					Value:    iso.Value,
					Text:     labelText,
				})
			}
		}
		levels = append(levels, set)
	}

	// F: assemble.
	return AssembleResult(req, grid, levels), nil
}

// convertFieldUnits rescales a field in place from native to target
// illuminance units using the fixed fc/lux constant (spec §4.D).
func convertFieldUnits(field *ScalarField, native, target models.IlluminanceUnits) {
	if native == target {
		return
	}
	factor := models.FootcandlesPerLux
	if native == models.UnitsLux {
		factor = 1 / models.FootcandlesPerLux
	}
	for j := range field.Values {
		for i := range field.Values[j] {
			field.Values[j][i] *= factor
		}
	}
}

// sanitizeField replaces non-finite samples (degenerate zero-distance
// points) with 0 once the engine has finished, so contouring never
// sees a NaN or Inf (spec §4.D Numerics, §7).
func sanitizeField(field *ScalarField) {
	for j := range field.Values {
		for i := range field.Values[j] {
			if v := field.Values[j][i]; math.IsNaN(v) || math.IsInf(v, 0) {
				field.Values[j][i] = 0
			}
		}
	}
}
