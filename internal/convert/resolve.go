package convert

import (
	"github.com/LBNL-ETA/opticalc/internal/optical"
	"github.com/LBNL-ETA/opticalc/internal/product"
)

// Side selects which face of a layer a resolver reads.
type Side string

const (
	SideFront Side = "FRONT"
	SideBack  Side = "BACK"
)

// ResolveEmissivity returns the authoritative emissivity for one side of a
// product under the given calculation standard. Precedence, each step
// returning immediately when it yields a value:
//
//  1. A predefined value from the legacy submission file header. A pointer
//     to zero is a present value and wins here.
//  2. The hemispheric absorptance from a previously computed thermal-IR
//     summary for the same standard (emissivity is defined as thermal-IR
//     hemispheric absorptance).
//  3. nil. Absence is a legitimate terminal state: the layer builder passes
//     nil through and the engine computes the value from wavelength data
//     when it can.
func ResolveEmissivity(p *product.Product, side Side, standardName string) *float64 {
	if p == nil {
		return nil
	}
	if pp := p.PhysicalProperties; pp != nil {
		if v := pickSide(side, pp.PredefinedEmissivityFront, pp.PredefinedEmissivityBack); v != nil {
			return v
		}
	}
	if tir := priorThermalIR(p, standardName); tir != nil {
		return pickSide(side, tir.AbsorptanceFrontHemispheric, tir.AbsorptanceBackHemispheric)
	}
	return nil
}

// ResolveTIR returns the authoritative total-infrared transmittance for one
// side, following the same precedence as ResolveEmissivity. Step 2 reads the
// diffuse-diffuse transmittance of the prior thermal-IR summary.
func ResolveTIR(p *product.Product, side Side, standardName string) *float64 {
	if p == nil {
		return nil
	}
	if pp := p.PhysicalProperties; pp != nil {
		if v := pickSide(side, pp.PredefinedTIRFront, pp.PredefinedTIRBack); v != nil {
			return v
		}
	}
	if tir := priorThermalIR(p, standardName); tir != nil {
		return pickSide(side, tir.TransmittanceFrontDiffuseDiffuse, tir.TransmittanceBackDiffuseDiffuse)
	}
	return nil
}

// priorThermalIR finds the first previously computed summary for the given
// standard that carries a thermal-IR block.
func priorThermalIR(p *product.Product, standardName string) *optical.ThermalIRResults {
	for i := range p.IntegratedSpectralAveragesSummaries {
		s := &p.IntegratedSpectralAveragesSummaries[i]
		if s.Standard == standardName && s.ThermalIR != nil {
			return s.ThermalIR
		}
	}
	return nil
}

func pickSide(side Side, front, back *float64) *float64 {
	if side == SideBack {
		return back
	}
	return front
}
