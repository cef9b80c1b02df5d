package convert

import (
	"strings"

	"github.com/LBNL-ETA/opticalc/internal/engine"
	"github.com/LBNL-ETA/opticalc/internal/product"
)

// materialBySubtype is the closed set of product subtypes that can become an
// engine solid layer. Shading subtypes with geometry or BSDF attachments are
// deliberately absent; they need a different input shape than an N-band
// layer.
var materialBySubtype = map[product.Subtype]engine.MaterialType{
	product.SubtypeMonolithic:  engine.MaterialMonolithic,
	product.SubtypeAppliedFilm: engine.MaterialAppliedFilm,
	product.SubtypeCoated:      engine.MaterialCoated,
	product.SubtypeLaminate:    engine.MaterialLaminate,
	product.SubtypeInterlayer:  engine.MaterialInterlayer,
	product.SubtypeFilm:        engine.MaterialFilm,
}

// ConvertSubtype maps a product subtype to the engine material type. Unknown
// subtypes are a hard failure, never a silent default.
func ConvertSubtype(subtype product.Subtype) (engine.MaterialType, error) {
	m, ok := materialBySubtype[subtype]
	if !ok {
		return "", &UnsupportedSubtypeError{Subtype: subtype}
	}
	return m, nil
}

var coatedSideByToken = map[string]engine.CoatedSide{
	"FRONT":   engine.CoatedSideFront,
	"BACK":    engine.CoatedSideBack,
	"BOTH":    engine.CoatedSideBoth,
	"NEITHER": engine.CoatedSideNeither,
	// Legacy submission files wrote "NA" for uncoated products.
	"NA": engine.CoatedSideNeither,
}

// ConvertCoatedSide maps a coated-side token case-insensitively. Empty input
// means NEITHER; any other unknown token is an error.
func ConvertCoatedSide(coatedSide string) (engine.CoatedSide, error) {
	token := strings.ToUpper(strings.TrimSpace(coatedSide))
	if token == "" {
		return engine.CoatedSideNeither, nil
	}
	side, ok := coatedSideByToken[token]
	if !ok {
		return "", &UnsupportedCoatedSideError{CoatedSide: coatedSide}
	}
	return side, nil
}

// BuildLayer assembles the complete optical+thermal engine input for one
// product: material type from the subtype, coated side, normalized
// wavelength data, and resolved emissivity/TIR values for both sides under
// the given standard. Pure function; the only side effects are the returned
// errors.
func BuildLayer(p *product.Product, mode WavelengthMode, standardName string) (engine.Layer, error) {
	return BuildLayerWithOptions(p, mode, standardName, NormalizeOptions{})
}

func BuildLayerWithOptions(p *product.Product, mode WavelengthMode, standardName string, opts NormalizeOptions) (engine.Layer, error) {
	if p == nil {
		return engine.Layer{}, &ValidationError{Msg: "cannot build a layer from a nil product"}
	}
	records := p.WavelengthData()
	if len(records) == 0 {
		return engine.Layer{}, &MissingOpticalDataError{Reason: "product has no wavelength records"}
	}

	material, err := ConvertSubtype(p.Subtype)
	if err != nil {
		return engine.Layer{}, err
	}
	coatedSide, err := ConvertCoatedSide(p.CoatedSide)
	if err != nil {
		return engine.Layer{}, err
	}
	measurements, err := NormalizeWithOptions(records, mode, opts)
	if err != nil {
		return engine.Layer{}, err
	}

	layer := engine.Layer{
		Material:        material,
		Wavelengths:     measurements,
		CoatedSide:      coatedSide,
		TIRFront:        ResolveTIR(p, SideFront, standardName),
		TIRBack:         ResolveTIR(p, SideBack, standardName),
		EmissivityFront: ResolveEmissivity(p, SideFront, standardName),
		EmissivityBack:  ResolveEmissivity(p, SideBack, standardName),
	}
	if p.PhysicalProperties != nil {
		layer.Thickness = p.PhysicalProperties.Thickness
	}
	return layer, nil
}
