package summary

import (
	"github.com/LBNL-ETA/opticalc/internal/engine"
	"github.com/LBNL-ETA/opticalc/internal/optical"
)

// TranslateTrichromatic renames the engine's X/Y/Z fields into the summary
// shape. Nil in, nil out; no numeric transformation.
func TranslateTrichromatic(t *engine.Trichromatic) *optical.TrichromaticResult {
	if t == nil {
		return nil
	}
	return &optical.TrichromaticResult{X: t.X, Y: t.Y, Z: t.Z}
}

func TranslateLab(l *engine.Lab) *optical.LabResult {
	if l == nil {
		return nil
	}
	return &optical.LabResult{L: l.L, A: l.A, B: l.B}
}

func TranslateRGB(r *engine.RGB) *optical.RGBResult {
	if r == nil {
		return nil
	}
	return &optical.RGBResult{R: r.R, G: r.G, B: r.B}
}

func translateColorComponents(c engine.ColorComponents) *optical.ColorResult {
	return &optical.ColorResult{
		Trichromatic: TranslateTrichromatic(c.Trichromatic),
		Lab:          TranslateLab(c.Lab),
		RGB:          TranslateRGB(c.RGB),
	}
}

func translateColorFlux(f engine.ColorFluxResults) *optical.ColorFluxResults {
	return &optical.ColorFluxResults{
		DirectDirect:        translateColorComponents(f.DirectDirect),
		DirectDiffuse:       translateColorComponents(f.DirectDiffuse),
		DirectHemispherical: translateColorComponents(f.DirectHemispherical),
		DiffuseDiffuse:      translateColorComponents(f.DiffuseDiffuse),
	}
}

func translateColorResults(res *engine.ColorResults) *optical.ColorResults {
	if res == nil {
		return nil
	}
	return &optical.ColorResults{
		TransmittanceFront: translateColorFlux(res.Front.Transmittance),
		TransmittanceBack:  translateColorFlux(res.Back.Transmittance),
		ReflectanceFront:   translateColorFlux(res.Front.Reflectance),
		ReflectanceBack:    translateColorFlux(res.Back.Reflectance),
	}
}

func translateFlux(f engine.FluxResults) *optical.FluxResults {
	return &optical.FluxResults{
		DirectDirect:        fptr(f.DirectDirect),
		DirectDiffuse:       fptr(f.DirectDiffuse),
		DirectHemispherical: fptr(f.DirectHemispherical),
		DiffuseDiffuse:      fptr(f.DiffuseDiffuse),
		Matrix:              f.Matrix,
	}
}

// translateMethodResults flattens one per-method engine result and derives
// the four absorptances from the system fluxes. Whatever came out of the
// glass neither through transmission nor reflection was absorbed; the
// engine's per-layer absorptance report is ignored on purpose.
func translateMethodResults(res *engine.OpticalResults) *optical.MethodResults {
	if res == nil {
		return nil
	}
	out := &optical.MethodResults{
		TransmittanceFront: translateFlux(res.Front.Transmittance),
		TransmittanceBack:  translateFlux(res.Back.Transmittance),
		ReflectanceFront:   translateFlux(res.Front.Reflectance),
		ReflectanceBack:    translateFlux(res.Back.Reflectance),
	}
	out.AbsorptanceFrontDirect = fptr(1 - res.Front.Transmittance.DirectHemispherical - res.Front.Reflectance.DirectHemispherical)
	out.AbsorptanceBackDirect = fptr(1 - res.Back.Transmittance.DirectHemispherical - res.Back.Reflectance.DirectHemispherical)
	out.AbsorptanceFrontHemispheric = fptr(1 - res.Front.Transmittance.DiffuseDiffuse - res.Front.Reflectance.DiffuseDiffuse)
	out.AbsorptanceBackHemispheric = fptr(1 - res.Back.Transmittance.DiffuseDiffuse - res.Back.Reflectance.DiffuseDiffuse)
	return out
}

func fptr(v float64) *float64 { return &v }
