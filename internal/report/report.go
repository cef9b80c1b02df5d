// Package report renders a computed spectral-averages summary as a
// human-readable evaluation report: markdown, standalone HTML, or PDF.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/LBNL-ETA/opticalc/internal/optical"
	"github.com/LBNL-ETA/opticalc/internal/product"
)

// BuildMarkdown renders one product/summary pair. Sections for methods the
// standard did not support are omitted rather than rendered empty.
func BuildMarkdown(p *product.Product, s *optical.IntegratedSummary) string {
	var b strings.Builder
	buildHeader(&b, p, s)

	for _, section := range []struct {
		title   string
		results *optical.MethodResults
	}{
		{"Photopic", s.Photopic},
		{"Solar", s.Solar},
		{"Damage-Weighted (TDW)", s.TDW},
		{"Krochmann (TKR)", s.TKR},
		{"UV (TUV)", s.TUV},
	} {
		if section.results != nil {
			buildMethodSection(&b, section.title, section.results)
		}
	}

	if s.Color != nil {
		buildColorSection(&b, s.Color)
	}
	if s.ThermalIR != nil {
		buildThermalIRSection(&b, s.ThermalIR)
	}
	return b.String()
}

func buildHeader(b *strings.Builder, p *product.Product, s *optical.IntegratedSummary) {
	fmt.Fprintf(b, "# Integrated Spectral Averages Summary\n\n")
	if p != nil {
		if p.Manufacturer != "" {
			fmt.Fprintf(b, "- Manufacturer: %s\n", p.Manufacturer)
		}
		if p.DataFileName != "" {
			fmt.Fprintf(b, "- Data file: %s\n", p.DataFileName)
		}
		if p.NFRCID != "" {
			fmt.Fprintf(b, "- NFRC ID: %s\n", p.NFRCID)
		}
		fmt.Fprintf(b, "- Type: %s / %s\n", p.Type, p.Subtype)
		if p.Appearance != "" {
			fmt.Fprintf(b, "- Appearance: %s\n", p.Appearance)
		}
		if p.PhysicalProperties != nil && p.PhysicalProperties.Thickness != nil {
			fmt.Fprintf(b, "- Thickness: %.3f mm\n", *p.PhysicalProperties.Thickness)
		}
	}
	fmt.Fprintf(b, "- Calculation standard: %s\n", s.Standard)
	fmt.Fprintf(b, "- Generated: %s\n\n", time.Now().UTC().Format(time.RFC3339))
}

func buildMethodSection(b *strings.Builder, title string, r *optical.MethodResults) {
	fmt.Fprintf(b, "## %s\n\n", title)
	fmt.Fprintf(b, "| Quantity | Direct-Direct | Direct-Diffuse | Direct-Hemispherical | Diffuse-Diffuse |\n")
	fmt.Fprintf(b, "| --- | --- | --- | --- | --- |\n")
	buildFluxRow(b, "Transmittance front", r.TransmittanceFront)
	buildFluxRow(b, "Transmittance back", r.TransmittanceBack)
	buildFluxRow(b, "Reflectance front", r.ReflectanceFront)
	buildFluxRow(b, "Reflectance back", r.ReflectanceBack)
	b.WriteString("\n")
	fmt.Fprintf(b, "- Absorptance front (direct): %s\n", num(r.AbsorptanceFrontDirect))
	fmt.Fprintf(b, "- Absorptance back (direct): %s\n", num(r.AbsorptanceBackDirect))
	fmt.Fprintf(b, "- Absorptance front (hemispheric): %s\n", num(r.AbsorptanceFrontHemispheric))
	fmt.Fprintf(b, "- Absorptance back (hemispheric): %s\n\n", num(r.AbsorptanceBackHemispheric))
}

func buildFluxRow(b *strings.Builder, label string, f *optical.FluxResults) {
	if f == nil {
		fmt.Fprintf(b, "| %s | n/a | n/a | n/a | n/a |\n", label)
		return
	}
	fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n", label,
		num(f.DirectDirect), num(f.DirectDiffuse), num(f.DirectHemispherical), num(f.DiffuseDiffuse))
}

func buildColorSection(b *strings.Builder, c *optical.ColorResults) {
	fmt.Fprintf(b, "## Color\n\n")
	fmt.Fprintf(b, "Direct-hemispherical stimulus per side and quantity.\n\n")
	fmt.Fprintf(b, "| Quantity | L | a | b | R | G | B |\n")
	fmt.Fprintf(b, "| --- | --- | --- | --- | --- | --- | --- |\n")
	buildColorRow(b, "Transmittance front", c.TransmittanceFront)
	buildColorRow(b, "Transmittance back", c.TransmittanceBack)
	buildColorRow(b, "Reflectance front", c.ReflectanceFront)
	buildColorRow(b, "Reflectance back", c.ReflectanceBack)
	b.WriteString("\n")
}

func buildColorRow(b *strings.Builder, label string, f *optical.ColorFluxResults) {
	var cell *optical.ColorResult
	if f != nil {
		cell = f.DirectHemispherical
	}
	if cell == nil {
		fmt.Fprintf(b, "| %s | n/a | n/a | n/a | n/a | n/a | n/a |\n", label)
		return
	}
	l, a, lab := "n/a", "n/a", "n/a"
	if cell.Lab != nil {
		l = fmtFloat(cell.Lab.L)
		a = fmtFloat(cell.Lab.A)
		lab = fmtFloat(cell.Lab.B)
	}
	r, g, bb := "n/a", "n/a", "n/a"
	if cell.RGB != nil {
		r = fmt.Sprintf("%.0f", cell.RGB.R)
		g = fmt.Sprintf("%.0f", cell.RGB.G)
		bb = fmt.Sprintf("%.0f", cell.RGB.B)
	}
	fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s | %s |\n", label, l, a, lab, r, g, bb)
}

func buildThermalIRSection(b *strings.Builder, t *optical.ThermalIRResults) {
	fmt.Fprintf(b, "## Thermal IR\n\n")
	fmt.Fprintf(b, "- IR transmittance front (diffuse-diffuse): %s\n", num(t.TransmittanceFrontDiffuseDiffuse))
	fmt.Fprintf(b, "- IR transmittance back (diffuse-diffuse): %s\n", num(t.TransmittanceBackDiffuseDiffuse))
	fmt.Fprintf(b, "- Emissivity front (hemispheric): %s\n", num(t.EmissivityFrontHemispheric()))
	fmt.Fprintf(b, "- Emissivity back (hemispheric): %s\n\n", num(t.EmissivityBackHemispheric()))
}

func num(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmtFloat(*v)
}

func fmtFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.6f", v), "0"), ".")
}
