package report

import (
	"strings"
	"testing"

	"github.com/LBNL-ETA/opticalc/internal/optical"
	"github.com/LBNL-ETA/opticalc/internal/product"
)

func fp(v float64) *float64 { return &v }

func sampleSummary() *optical.IntegratedSummary {
	return &optical.IntegratedSummary{
		Standard: "NFRC",
		Solar: &optical.MethodResults{
			TransmittanceFront: &optical.FluxResults{
				DirectDirect:        fp(0.846),
				DirectDiffuse:       fp(0),
				DirectHemispherical: fp(0.847468218237298),
				DiffuseDiffuse:      fp(0.775),
			},
			ReflectanceFront:            &optical.FluxResults{DirectHemispherical: fp(0.074766)},
			AbsorptanceFrontDirect:      fp(0.077766),
			AbsorptanceFrontHemispheric: fp(0.087),
		},
		Color: &optical.ColorResults{
			TransmittanceFront: &optical.ColorFluxResults{
				DirectHemispherical: &optical.ColorResult{
					Lab: &optical.LabResult{L: 95.2, A: -1.3, B: 0.5},
					RGB: &optical.RGBResult{R: 255, G: 250, B: 247},
				},
			},
		},
		ThermalIR: &optical.ThermalIRResults{
			TransmittanceFrontDiffuseDiffuse: fp(0),
			AbsorptanceFrontHemispheric:      fp(0.84),
		},
	}
}

func sampleProduct() *product.Product {
	return &product.Product{
		Type:         product.TypeGlazing,
		Subtype:      product.SubtypeMonolithic,
		Manufacturer: "Generic Glass Co",
		DataFileName: "CLEAR_3.DAT",
		NFRCID:       "102",
		Appearance:   "Clear",
		PhysicalProperties: &product.PhysicalProperties{
			Thickness: fp(3.048),
		},
	}
}

func TestBuildMarkdownSections(t *testing.T) {
	md := BuildMarkdown(sampleProduct(), sampleSummary())

	for _, want := range []string{
		"# Integrated Spectral Averages Summary",
		"- Manufacturer: Generic Glass Co",
		"- Data file: CLEAR_3.DAT",
		"- NFRC ID: 102",
		"- Type: GLAZING / MONOLITHIC",
		"- Thickness: 3.048 mm",
		"- Calculation standard: NFRC",
		"## Solar",
		"| Transmittance front | 0.846 | 0 | 0.847468 | 0.775 |",
		"- Absorptance front (direct): 0.077766",
		"## Color",
		"| Transmittance front | 95.2 | -1.3 | 0.5 | 255 | 250 | 247 |",
		"## Thermal IR",
		"- IR transmittance front (diffuse-diffuse): 0",
		"- Emissivity front (hemispheric): 0.84",
		"- Emissivity back (hemispheric): n/a",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q\n----\n%s", want, md)
		}
	}
}

func TestBuildMarkdownOmitsAbsentMethods(t *testing.T) {
	s := sampleSummary()
	s.TUV = nil
	s.Photopic = nil
	md := BuildMarkdown(sampleProduct(), s)

	if strings.Contains(md, "## UV (TUV)") {
		t.Fatal("tuv section should be omitted when no results exist")
	}
	if strings.Contains(md, "## Photopic") {
		t.Fatal("photopic section should be omitted when no results exist")
	}
	if !strings.Contains(md, "## Solar") {
		t.Fatal("solar section should be present")
	}
}

func TestBuildMarkdownNilProductStillRenders(t *testing.T) {
	md := BuildMarkdown(nil, sampleSummary())
	if !strings.Contains(md, "- Calculation standard: NFRC") {
		t.Fatalf("expected standard line, got\n%s", md)
	}
}

func TestRenderHTML(t *testing.T) {
	md := BuildMarkdown(sampleProduct(), sampleSummary())
	html, err := RenderHTML(md)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<!doctype html>",
		"<style>",
		"<table>",
		"<h2>Solar</h2>",
		"Generic Glass Co",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("html missing %q", want)
		}
	}
}
