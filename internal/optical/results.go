package optical

// FluxResults holds the four integrated flux components for one quantity
// (transmittance or reflectance) on one side of a glazing layer, plus the
// full BSDF matrix when the engine produced one.
type FluxResults struct {
	DirectDirect        *float64    `json:"direct_direct,omitempty"`
	DirectDiffuse       *float64    `json:"direct_diffuse,omitempty"`
	DirectHemispherical *float64    `json:"direct_hemispherical,omitempty"`
	DiffuseDiffuse      *float64    `json:"diffuse_diffuse,omitempty"`
	Matrix              [][]float64 `json:"matrix,omitempty"`
}

// MethodResults is the flat result block attached to a summary under one
// optical method name (solar, photopic, tdw, tkr, tuv). Absorptances are
// derived from the flux results by energy conservation, never copied from
// engine layer results.
type MethodResults struct {
	TransmittanceFront *FluxResults `json:"transmittance_front,omitempty"`
	TransmittanceBack  *FluxResults `json:"transmittance_back,omitempty"`
	ReflectanceFront   *FluxResults `json:"reflectance_front,omitempty"`
	ReflectanceBack    *FluxResults `json:"reflectance_back,omitempty"`

	AbsorptanceFrontDirect      *float64 `json:"absorptance_front_direct,omitempty"`
	AbsorptanceBackDirect       *float64 `json:"absorptance_back_direct,omitempty"`
	AbsorptanceFrontHemispheric *float64 `json:"absorptance_front_hemispheric,omitempty"`
	AbsorptanceBackHemispheric  *float64 `json:"absorptance_back_hemispheric,omitempty"`
}

type TrichromaticResult struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type LabResult struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

type RGBResult struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// ColorResult carries the same computed color stimulus in three color-space
// representations.
type ColorResult struct {
	Trichromatic *TrichromaticResult `json:"trichromatic,omitempty"`
	Lab          *LabResult          `json:"lab,omitempty"`
	RGB          *RGBResult          `json:"rgb,omitempty"`
}

type ColorFluxResults struct {
	DirectDirect        *ColorResult `json:"direct_direct,omitempty"`
	DirectDiffuse       *ColorResult `json:"direct_diffuse,omitempty"`
	DirectHemispherical *ColorResult `json:"direct_hemispherical,omitempty"`
	DiffuseDiffuse      *ColorResult `json:"diffuse_diffuse,omitempty"`
}

type ColorResults struct {
	TransmittanceFront *ColorFluxResults `json:"transmittance_front,omitempty"`
	TransmittanceBack  *ColorFluxResults `json:"transmittance_back,omitempty"`
	ReflectanceFront   *ColorFluxResults `json:"reflectance_front,omitempty"`
	ReflectanceBack    *ColorFluxResults `json:"reflectance_back,omitempty"`
}

// ThermalIRResults records long-wave infrared behavior. Emissivity is stored
// in the absorptance fields: in this domain emissivity is defined as
// thermal-IR hemispheric absorptance and the two are numerically equal.
type ThermalIRResults struct {
	TransmittanceFrontDiffuseDiffuse *float64 `json:"transmittance_front_diffuse_diffuse,omitempty"`
	TransmittanceBackDiffuseDiffuse  *float64 `json:"transmittance_back_diffuse_diffuse,omitempty"`
	AbsorptanceFrontHemispheric      *float64 `json:"absorptance_front_hemispheric,omitempty"`
	AbsorptanceBackHemispheric       *float64 `json:"absorptance_back_hemispheric,omitempty"`
}

// EmissivityFrontHemispheric is an alias accessor for the stored hemispheric
// absorptance.
func (t *ThermalIRResults) EmissivityFrontHemispheric() *float64 {
	if t == nil {
		return nil
	}
	return t.AbsorptanceFrontHemispheric
}

func (t *ThermalIRResults) EmissivityBackHemispheric() *float64 {
	if t == nil {
		return nil
	}
	return t.AbsorptanceBackHemispheric
}

// IntegratedSummary aggregates every calculation pass for one product under
// one calculation standard. A summary is either fully populated for the
// standard's supported methods or it does not exist; orchestration never
// hands out partial summaries.
//
// The spf block exists for compatibility with stored records from legacy
// submissions. New summaries never populate it: SPF is inversely related to
// transmittance and cannot come out of the same spectral-averaging routine
// as the other methods.
type IntegratedSummary struct {
	Standard  string            `json:"standard"`
	Photopic  *MethodResults    `json:"photopic,omitempty"`
	Solar     *MethodResults    `json:"solar,omitempty"`
	TDW       *MethodResults    `json:"tdw,omitempty"`
	TKR       *MethodResults    `json:"tkr,omitempty"`
	TUV       *MethodResults    `json:"tuv,omitempty"`
	SPF       *MethodResults    `json:"spf,omitempty"`
	Color     *ColorResults     `json:"color,omitempty"`
	ThermalIR *ThermalIRResults `json:"thermal_ir,omitempty"`
}
