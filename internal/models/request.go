// Package models holds the boundary DTOs exchanged between the HTTP
// layer and the photometric core, following the teacher's
// internal/models convention: plain structs, json tags, and a
// hand-written Validate() rather than a struct-tag validation engine.
package models

import (
	"fmt"
	"math"
)

// DetailLevel selects the calculation-plane grid spacing (spec §4.C).
type DetailLevel string

const (
	DetailLow    DetailLevel = "low"
	DetailMedium DetailLevel = "medium"
	DetailHigh   DetailLevel = "high"
)

// Spacing returns the grid spacing in the request's length unit.
func (d DetailLevel) Spacing() (float64, error) {
	switch d {
	case DetailLow:
		return 2.0, nil
	case DetailMedium:
		return 1.0, nil
	case DetailHigh:
		return 0.5, nil
	default:
		return 0, fmt.Errorf("unknown detail level %q", d)
	}
}

// LengthUnits selects the length unit the request's geometric fields
// are expressed in, which also drives the intensity table's native
// illuminance unit (spec §4.D "Unit conversion").
type LengthUnits string

const (
	UnitsFeet   LengthUnits = "ft"
	UnitsMeters LengthUnits = "m"
)

func (u LengthUnits) valid() bool {
	return u == UnitsFeet || u == UnitsMeters
}

// NativeIlluminanceUnits returns the illuminance unit the point-source
// law yields natively for this length unit (spec §4.D).
func (u LengthUnits) NativeIlluminanceUnits() IlluminanceUnits {
	if u == UnitsMeters {
		return UnitsLux
	}
	return UnitsFootcandle
}

// LabelInterval returns the contour-label spacing interval (spec §4.E).
func (u LengthUnits) LabelInterval() float64 {
	if u == UnitsMeters {
		return 12.0
	}
	return 40.0
}

// ScaleBar returns the advisory scale-bar length and printable label
// (spec §4.F).
func (u LengthUnits) ScaleBar() (length float64, label string) {
	if u == UnitsMeters {
		return 15, "15m"
	}
	return 50, "50'"
}

// IlluminanceUnits selects the unit the compute result is reported in.
type IlluminanceUnits string

const (
	UnitsFootcandle IlluminanceUnits = "fc"
	UnitsLux        IlluminanceUnits = "lux"
)

func (u IlluminanceUnits) valid() bool {
	return u == UnitsFootcandle || u == UnitsLux
}

// FootcandlesPerLux is the spec's fixed conversion constant (spec §4.D,
// GLOSSARY). Multiply fc to get lux; divide lux to get fc.
const FootcandlesPerLux = 10.7639

// IsoLevel is one requested iso-illuminance value and its rendering color.
type IsoLevel struct {
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Rotation is an intrinsic X→Y→Z Euler rotation in degrees, applied
// local-to-world (spec §4.D, Design Notes open question).
type Rotation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func validAngle(a float64) bool {
	return a > -180 && a <= 180
}

// ComputeRequest is the immutable input to the compute pipeline
// (spec §3).
type ComputeRequest struct {
	MountingHeight         float64          `json:"mounting_height"`
	CalcPlaneHeight        float64          `json:"calc_plane_height"`
	RadiusFactor           float64          `json:"radius_factor"`
	DetailLevel            DetailLevel      `json:"detail_level"`
	LLF                    float64          `json:"llf"`
	Rotation               Rotation         `json:"rotation_xyz"`
	Units                  LengthUnits      `json:"units"`
	TargetIlluminanceUnits IlluminanceUnits `json:"target_illuminance_units"`
	IsoLevels              []IsoLevel       `json:"iso_levels"`
}

// Validate checks the request-level invariants from spec §3 and §7
// (RequestError conditions), independent of the photometric table or
// grid size.
func (r *ComputeRequest) Validate() error {
	if r.MountingHeight <= 0 {
		return fmt.Errorf("mounting_height must be positive, got %v", r.MountingHeight)
	}
	if r.CalcPlaneHeight >= r.MountingHeight {
		return fmt.Errorf("calc_plane_height (%v) must be less than mounting_height (%v)", r.CalcPlaneHeight, r.MountingHeight)
	}
	if r.RadiusFactor <= 0 {
		return fmt.Errorf("radius_factor must be positive, got %v", r.RadiusFactor)
	}
	if _, err := r.DetailLevel.Spacing(); err != nil {
		return err
	}
	if r.LLF <= 0 {
		return fmt.Errorf("llf must be positive, got %v", r.LLF)
	}
	if !r.Units.valid() {
		return fmt.Errorf("unknown units %q", r.Units)
	}
	if !r.TargetIlluminanceUnits.valid() {
		return fmt.Errorf("unknown target_illuminance_units %q", r.TargetIlluminanceUnits)
	}
	if len(r.IsoLevels) == 0 {
		return fmt.Errorf("iso_levels must not be empty")
	}
	for i, lvl := range r.IsoLevels {
		if lvl.Value <= 0 {
			return fmt.Errorf("iso_levels[%d].value must be positive, got %v", i, lvl.Value)
		}
	}
	for name, angle := range map[string]float64{"x": r.Rotation.X, "y": r.Rotation.Y, "z": r.Rotation.Z} {
		if !validAngle(angle) || math.IsNaN(angle) {
			return fmt.Errorf("rotation_xyz.%s must be in (-180, 180], got %v", name, angle)
		}
	}
	return nil
}
