package engine

// FluxResults carries the four integrated flux components for one quantity
// on one side, plus the BSDF matrix when the evaluation produced one.
type FluxResults struct {
	DirectDirect        float64     `json:"direct_direct"`
	DirectDiffuse       float64     `json:"direct_diffuse"`
	DirectHemispherical float64     `json:"direct_hemispherical"`
	DiffuseDiffuse      float64     `json:"diffuse_diffuse"`
	Matrix              [][]float64 `json:"matrix,omitempty"`
}

type SideResults struct {
	Transmittance FluxResults `json:"transmittance"`
	Reflectance   FluxResults `json:"reflectance"`
}

type LayerAbsorptance struct {
	Direct  float64 `json:"direct"`
	Diffuse float64 `json:"diffuse"`
}

type LayerSideResults struct {
	Absorptance LayerAbsorptance `json:"absorptance"`
}

// LayerResults is the per-layer block engines report alongside system
// results. Summary assembly derives its own absorptances from the system
// fluxes instead of copying these.
type LayerResults struct {
	Front LayerSideResults `json:"front"`
	Back  LayerSideResults `json:"back"`
}

type OpticalResults struct {
	Front  SideResults    `json:"front"`
	Back   SideResults    `json:"back"`
	Layers []LayerResults `json:"layer_results,omitempty"`
}

type Trichromatic struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// ColorComponents carries one computed color stimulus in three color-space
// representations. Engines normally produce all three; nil marks a
// representation the engine could not compute.
type ColorComponents struct {
	Trichromatic *Trichromatic `json:"trichromatic,omitempty"`
	Lab          *Lab          `json:"lab,omitempty"`
	RGB          *RGB          `json:"rgb,omitempty"`
}

type ColorFluxResults struct {
	DirectDirect        ColorComponents `json:"direct_direct"`
	DirectDiffuse       ColorComponents `json:"direct_diffuse"`
	DirectHemispherical ColorComponents `json:"direct_hemispherical"`
	DiffuseDiffuse      ColorComponents `json:"diffuse_diffuse"`
}

type ColorSideResults struct {
	Transmittance ColorFluxResults `json:"transmittance"`
	Reflectance   ColorFluxResults `json:"reflectance"`
}

type ColorResults struct {
	Front ColorSideResults `json:"front"`
	Back  ColorSideResults `json:"back"`
}

type ThermalIRResults struct {
	TransmittanceFrontDiffuseDiffuse float64 `json:"transmittance_front_diffuse_diffuse"`
	TransmittanceBackDiffuseDiffuse  float64 `json:"transmittance_back_diffuse_diffuse"`
	EmissivityFrontHemispheric       float64 `json:"emissivity_front_hemispheric"`
	EmissivityBackHemispheric        float64 `json:"emissivity_back_hemispheric"`
}
