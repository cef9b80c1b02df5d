package product

type BulkMaterial string

const (
	BulkMaterialUnknown       BulkMaterial = "UNKNOWN"
	BulkMaterialNA            BulkMaterial = "NA"
	BulkMaterialGlass         BulkMaterial = "GLASS"
	BulkMaterialPVB           BulkMaterial = "PVB"
	BulkMaterialPolycarbonate BulkMaterial = "POLYCARBONATE"
	BulkMaterialAcrylic       BulkMaterial = "ACRYLIC"
	BulkMaterialPET           BulkMaterial = "PET"
)

// bulkMaterialByCode maps the numeric material codes used in legacy
// submission files.
var bulkMaterialByCode = map[int]BulkMaterial{
	1: BulkMaterialUnknown,
	2: BulkMaterialNA,
	3: BulkMaterialGlass,
	4: BulkMaterialPVB,
	5: BulkMaterialPolycarbonate,
	6: BulkMaterialAcrylic,
	7: BulkMaterialPET,
}

// BulkMaterialFromCode resolves a legacy numeric material code. Unknown
// codes resolve to BulkMaterialUnknown rather than failing: the code is
// informational metadata, never an input to conversion.
func BulkMaterialFromCode(code int) BulkMaterial {
	if m, ok := bulkMaterialByCode[code]; ok {
		return m
	}
	return BulkMaterialUnknown
}

// MaterialBulkProperties describes the substrate material of a product.
// Values come from a curated materials table, with optional per-product
// overrides in PhysicalProperties.BulkPropertiesOverride.
type MaterialBulkProperties struct {
	Name               string         `json:"name"`
	DisplayName        string         `json:"display_name,omitempty"`
	Version            string         `json:"version,omitempty"`
	Conductivity       *float64       `json:"conductivity,omitempty"`
	YoungsModulus      *float64       `json:"youngs_modulus,omitempty"`
	PoissonsRatio      *float64       `json:"poissons_ratio,omitempty"`
	Elasticity         *float64       `json:"elasticity,omitempty"`
	MoistureProperties map[string]any `json:"moisture_properties,omitempty"`
}
