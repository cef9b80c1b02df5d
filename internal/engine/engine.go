package engine

import "context"

// Method names one spectral-averaging evaluation a calculation standard can
// support.
type Method string

const (
	MethodSolar    Method = "SOLAR"
	MethodPhotopic Method = "PHOTOPIC"
	MethodTUV      Method = "TUV"
	MethodSPF      Method = "SPF"
	MethodTDW      Method = "TDW"
	MethodTKR      Method = "TKR"
)

// KnownMethods is the closed set of method names standard definitions may
// declare.
var KnownMethods = map[Method]bool{
	MethodSolar:    true,
	MethodPhotopic: true,
	MethodTUV:      true,
	MethodSPF:      true,
	MethodTDW:      true,
	MethodTKR:      true,
}

type MaterialType string

const (
	MaterialMonolithic  MaterialType = "MONOLITHIC"
	MaterialAppliedFilm MaterialType = "APPLIED_FILM"
	MaterialCoated      MaterialType = "COATED"
	MaterialLaminate    MaterialType = "LAMINATE"
	MaterialInterlayer  MaterialType = "INTERLAYER"
	MaterialFilm        MaterialType = "FILM"
)

type CoatedSide string

const (
	CoatedSideFront   CoatedSide = "FRONT"
	CoatedSideBack    CoatedSide = "BACK"
	CoatedSideBoth    CoatedSide = "BOTH"
	CoatedSideNeither CoatedSide = "NEITHER"
)

// MeasurementComponent holds the four coerced sub-values of one wavelength
// measurement: transmittance front/back, reflectance front/back.
type MeasurementComponent struct {
	Tf float64 `json:"tf"`
	Tb float64 `json:"tb"`
	Rf float64 `json:"rf"`
	Rb float64 `json:"rb"`
}

// WavelengthMeasurement is one normalized sample point. Wavelength is in
// microns. The direct component carries whichever channel the wavelength
// combination mode selected.
type WavelengthMeasurement struct {
	Wavelength float64              `json:"w"`
	Direct     MeasurementComponent `json:"direct"`
}

// Layer is the complete optical+thermal input for one solid layer. Nil
// pointer fields mean "not provided"; the engine computes those values from
// wavelength data when it can.
type Layer struct {
	Material        MaterialType            `json:"material_type"`
	Thickness       *float64                `json:"thickness,omitempty"`
	Wavelengths     []WavelengthMeasurement `json:"wavelength_data"`
	CoatedSide      CoatedSide              `json:"coated_side"`
	TIRFront        *float64                `json:"ir_transmittance_front,omitempty"`
	TIRBack         *float64                `json:"ir_transmittance_back,omitempty"`
	EmissivityFront *float64                `json:"emissivity_front,omitempty"`
	EmissivityBack  *float64                `json:"emissivity_back,omitempty"`
}

// Standard identifies a calculation standard and the methods it permits.
type Standard interface {
	Name() string
	Supports(m Method) bool
	Methods() []Method
}

// Engine is the opaque optical-physics capability this package's callers
// orchestrate. Every call is stateless and blocking; implementations must
// honor ctx cancellation but are free to take as long as the physics takes.
type Engine interface {
	EvaluateOptical(ctx context.Context, std Standard, layers []Layer, method Method) (*OpticalResults, error)
	EvaluateColor(ctx context.Context, std Standard, layers []Layer) (*ColorResults, error)
	EvaluateThermalIR(ctx context.Context, std Standard, layer Layer) (*ThermalIRResults, error)
}
