package product

import (
	"fmt"

	"github.com/LBNL-ETA/opticalc/internal/optical"
)

type TokenType string

const (
	TokenPublished  TokenType = "PUBLISHED"
	TokenUndefined  TokenType = "UNDEFINED"
	TokenProposed   TokenType = "PROPOSED"
	TokenIntragroup TokenType = "INTRAGROUP"
)

type Type string

const (
	TypeGlazing  Type = "GLAZING"
	TypeShading  Type = "SHADING"
	TypeMaterial Type = "MATERIAL"
)

type Subtype string

const (
	// Glazing subtypes.
	SubtypeMonolithic      Subtype = "MONOLITHIC"
	SubtypeLaminate        Subtype = "LAMINATE"
	SubtypeInterlayer      Subtype = "INTERLAYER"
	SubtypeEmbeddedCoating Subtype = "EMBEDDED_COATING"
	SubtypeCoated          Subtype = "COATED"
	SubtypeCoating         Subtype = "COATING"
	SubtypeAppliedFilm     Subtype = "APPLIED_FILM"
	SubtypeFilm            Subtype = "FILM"

	// Hybrid glazing/shading subtypes.
	SubtypeFrittedGlass     Subtype = "FRITTED_GLASS"
	SubtypeSandblastedGlass Subtype = "SANDBLASTED_GLASS"
	SubtypeAcidEtchedGlass  Subtype = "ACID_ETCHED_GLASS"
	SubtypeChromogenic      Subtype = "CHROMOGENIC"

	// Shading subtypes with an associated geometry.
	SubtypeVenetianBlind    Subtype = "VENETIAN_BLIND"
	SubtypeVerticalLouver   Subtype = "VERTICAL_LOUVER"
	SubtypePerforatedScreen Subtype = "PERFORATED_SCREEN"
	SubtypeWovenShade       Subtype = "WOVEN_SHADE"

	// Shading subtypes carrying a BSDF or GEN_BSDF attachment.
	SubtypeRollerShade   Subtype = "ROLLER_SHADE"
	SubtypeCellularShade Subtype = "CELLULAR_SHADE"
	SubtypePleatedShade  Subtype = "PLEATED_SHADE"
	SubtypeRomanShade    Subtype = "ROMAN_SHADE"

	SubtypeDiffusingShade Subtype = "DIFFUSING_SHADE"
	SubtypeSolarScreen    Subtype = "SOLAR_SCREEN"

	SubtypeShadeMaterial Subtype = "SHADE_MATERIAL"

	SubtypeUnknown Subtype = "UNKNOWN"
)

var subtypes = map[Subtype]bool{
	SubtypeMonolithic: true, SubtypeLaminate: true, SubtypeInterlayer: true,
	SubtypeEmbeddedCoating: true, SubtypeCoated: true, SubtypeCoating: true,
	SubtypeAppliedFilm: true, SubtypeFilm: true,
	SubtypeFrittedGlass: true, SubtypeSandblastedGlass: true,
	SubtypeAcidEtchedGlass: true, SubtypeChromogenic: true,
	SubtypeVenetianBlind: true, SubtypeVerticalLouver: true,
	SubtypePerforatedScreen: true, SubtypeWovenShade: true,
	SubtypeRollerShade: true, SubtypeCellularShade: true,
	SubtypePleatedShade: true, SubtypeRomanShade: true,
	SubtypeDiffusingShade: true, SubtypeSolarScreen: true,
	SubtypeShadeMaterial: true, SubtypeUnknown: true,
}

// MeasurementValues are the four raw sub-values of one measurement component.
// Legacy submission files deliver leaves as numbers, numeric strings, or
// null, so the leaves stay untyped until the normalizer coerces them.
type MeasurementValues struct {
	Tf any `json:"tf"`
	Tb any `json:"tb"`
	Rf any `json:"rf"`
	Rb any `json:"rb"`
}

// WavelengthPoint is one raw per-wavelength record. Either component may be
// absent; which ones must be present depends on the wavelength combination
// mode selected at conversion time.
type WavelengthPoint struct {
	W        any                `json:"w"`
	Specular *MeasurementValues `json:"specular,omitempty"`
	Diffuse  *MeasurementValues `json:"diffuse,omitempty"`
}

type AngleBlock struct {
	IncidenceAngle *float64          `json:"incidence_angle,omitempty"`
	NumWavelengths *int              `json:"num_wavelengths,omitempty"`
	WavelengthData []WavelengthPoint `json:"wavelength_data,omitempty"`
}

type OpticalData struct {
	NumberIncidenceAngles *int         `json:"number_incidence_angles,omitempty"`
	AngleBlocks           []AngleBlock `json:"angle_blocks,omitempty"`
}

type OpticalProperties struct {
	OpticalData *OpticalData `json:"optical_data,omitempty"`
}

// PhysicalProperties carries measured and user-declared physical values.
// The predefined emissivity/TIR fields hold values the submitter wrote in
// legacy file headers; a pointer to zero is a present value, distinct from
// an absent one.
type PhysicalProperties struct {
	PredefinedEmissivityFront *float64 `json:"predefined_emissivity_front,omitempty"`
	PredefinedEmissivityBack  *float64 `json:"predefined_emissivity_back,omitempty"`
	PredefinedTIRFront        *float64 `json:"predefined_tir_front,omitempty"`
	PredefinedTIRBack         *float64 `json:"predefined_tir_back,omitempty"`

	Thickness          *float64 `json:"thickness,omitempty"`
	PermeabilityFactor *float64 `json:"permeability_factor,omitempty"`
	OpticalOpenness    *float64 `json:"optical_openness,omitempty"`

	BulkPropertiesOverride map[string]any     `json:"bulk_properties_override,omitempty"`
	IsSpecular             *bool              `json:"is_specular,omitempty"`
	OpticalProperties      *OpticalProperties `json:"optical_properties,omitempty"`
}

// Product is one fenestration product record as exported from the IGSDB.
// Most identity and provenance fields are opaque to the conversion core and
// pass through untouched.
type Product struct {
	Type    Type    `json:"type"`
	Subtype Subtype `json:"subtype"`

	ProductID    *int      `json:"product_id,omitempty"`
	Token        string    `json:"token,omitempty"`
	TokenType    TokenType `json:"token_type,omitempty"`
	DataFileName string    `json:"data_file_name,omitempty"`
	DataFileType string    `json:"data_file_type,omitempty"`

	// Deconstructable products can be split into parts; reference products
	// exist only to carry a child product into the IGSDB on a reference
	// substrate (valid for APPLIED_FILM and LAMINATE submissions only).
	Deconstructable bool `json:"deconstructable,omitempty"`
	Reference       bool `json:"reference,omitempty"`

	IGSDBVersion       string           `json:"igsdb_version,omitempty"`
	CoatedSide         string           `json:"coated_side,omitempty"`
	CoatingName        string           `json:"coating_name,omitempty"`
	CoatingID          *int             `json:"coating_id,omitempty"`
	Owner              string           `json:"owner,omitempty"`
	Manufacturer       string           `json:"manufacturer,omitempty"`
	ProductDescription map[string]any   `json:"product_description,omitempty"`
	IGSDBChecksum      *int             `json:"igsdb_checksum,omitempty"`
	Material           string           `json:"material,omitempty"`
	PublishedDate      string           `json:"published_date,omitempty"`
	Hidden             *bool            `json:"hidden,omitempty"`
	Active             *bool            `json:"active,omitempty"`
	Appearance         string           `json:"appearance,omitempty"`
	Acceptance         string           `json:"acceptance,omitempty"`
	NFRCID             string           `json:"nfrc_id,omitempty"`
	Composition        []map[string]any `json:"composition,omitempty"`

	MaterialBulkProperties *MaterialBulkProperties `json:"material_bulk_properties,omitempty"`

	IntegratedSpectralAveragesSummaries []optical.IntegratedSummary `json:"integrated_spectral_averages_summaries,omitempty"`

	PhysicalProperties *PhysicalProperties `json:"physical_properties,omitempty"`

	ExtraData map[string]any `json:"extra_data,omitempty"`
	CreatedAt string         `json:"created_at,omitempty"`
	UpdatedAt string         `json:"updated_at,omitempty"`
}

// Validate checks closed-enum membership and basic physical sanity. It does
// not require optical data; products without measurements are valid records
// that simply cannot be converted into engine layers.
func (p *Product) Validate() error {
	if p == nil {
		return fmt.Errorf("product is nil")
	}
	switch p.Type {
	case TypeGlazing, TypeShading, TypeMaterial:
	default:
		return fmt.Errorf("unknown product type %q", p.Type)
	}
	if !subtypes[p.Subtype] {
		return fmt.Errorf("unknown product subtype %q", p.Subtype)
	}
	if p.TokenType != "" {
		switch p.TokenType {
		case TokenPublished, TokenUndefined, TokenProposed, TokenIntragroup:
		default:
			return fmt.Errorf("unknown token type %q", p.TokenType)
		}
	}
	if p.PhysicalProperties != nil && p.PhysicalProperties.Thickness != nil && *p.PhysicalProperties.Thickness <= 0 {
		return fmt.Errorf("thickness must be positive, got %v", *p.PhysicalProperties.Thickness)
	}
	return nil
}

// WavelengthData returns the raw wavelength records of the first angle
// block, or nil when any link in the chain is absent. Callers that require
// data present must check emptiness themselves.
func (p *Product) WavelengthData() []WavelengthPoint {
	if p == nil || p.PhysicalProperties == nil {
		return nil
	}
	op := p.PhysicalProperties.OpticalProperties
	if op == nil || op.OpticalData == nil || len(op.OpticalData.AngleBlocks) == 0 {
		return nil
	}
	return op.OpticalData.AngleBlocks[0].WavelengthData
}
