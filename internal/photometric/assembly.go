package photometric

import "isolux/internal/models"

// AssembleResult builds the final ComputeResult from a computed
// scalar field and its extracted per-level contours (spec §4.F).
func AssembleResult(req *models.ComputeRequest, grid *Grid, levels []models.ContourSet) *models.ComputeResult {
	length, label := req.Units.ScaleBar()

	return &models.ComputeResult{
		Units:            req.Units,
		IlluminanceUnits: req.TargetIlluminanceUnits,
		MountingHeight:   req.MountingHeight,
		CalcPlaneHeight:  req.CalcPlaneHeight,
		Radius:           grid.Radius,
		PointCount:       grid.NumPoints(),
		Extents: models.Extents{
			MinX: -grid.Radius,
			MaxX: grid.Radius,
			MinY: -grid.Radius,
			MaxY: grid.Radius,
		},
		ScaleBar: models.ScaleBarInfo{Length: length, Label: label},
		Levels:   levels,
	}
}

func toModelPoints(pts []Point) []models.Point {
	out := make([]models.Point, len(pts))
	for i, p := range pts {
		out[i] = models.Point{X: p.X, Y: p.Y}
	}
	return out
}
