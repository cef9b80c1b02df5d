package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LBNL-ETA/opticalc/internal/convert"
	"github.com/LBNL-ETA/opticalc/internal/engine"
	"github.com/LBNL-ETA/opticalc/internal/optical"
	"github.com/LBNL-ETA/opticalc/internal/product"
)

type mockEngine struct {
	optical   *engine.OpticalResults
	color     *engine.ColorResults
	thermal   *engine.ThermalIRResults
	err       map[string]error
	calls     map[string]int
	callOrder []string
}

func newMockEngine() *mockEngine {
	return &mockEngine{
		optical: opticalFixture(),
		color:   colorFixture(),
		thermal: thermalFixture(),
		err:     map[string]error{},
		calls:   map[string]int{},
	}
}

func (m *mockEngine) EvaluateOptical(_ context.Context, _ engine.Standard, _ []engine.Layer, method engine.Method) (*engine.OpticalResults, error) {
	key := string(method)
	m.calls[key]++
	m.callOrder = append(m.callOrder, key)
	if err := m.err[key]; err != nil {
		return nil, err
	}
	return m.optical, nil
}

func (m *mockEngine) EvaluateColor(context.Context, engine.Standard, []engine.Layer) (*engine.ColorResults, error) {
	m.calls["color"]++
	m.callOrder = append(m.callOrder, "color")
	if err := m.err["color"]; err != nil {
		return nil, err
	}
	return m.color, nil
}

func (m *mockEngine) EvaluateThermalIR(context.Context, engine.Standard, engine.Layer) (*engine.ThermalIRResults, error) {
	m.calls["thermal_ir"]++
	m.callOrder = append(m.callOrder, "thermal_ir")
	if err := m.err["thermal_ir"]; err != nil {
		return nil, err
	}
	return m.thermal, nil
}

type stubStandard struct {
	name    string
	methods []engine.Method
}

func (s stubStandard) Name() string             { return s.name }
func (s stubStandard) Methods() []engine.Method { return s.methods }
func (s stubStandard) Supports(m engine.Method) bool {
	for _, have := range s.methods {
		if have == m {
			return true
		}
	}
	return false
}

func nfrcStandard() stubStandard {
	return stubStandard{name: "NFRC", methods: []engine.Method{
		engine.MethodSolar, engine.MethodPhotopic, engine.MethodTUV,
		engine.MethodSPF, engine.MethodTDW, engine.MethodTKR,
	}}
}

func fp(v float64) *float64 { return &v }

func mv(tf, tb, rf, rb float64) *product.MeasurementValues {
	return &product.MeasurementValues{Tf: tf, Tb: tb, Rf: rf, Rb: rb}
}

// glassProduct carries specular data in the solar range plus predefined
// emissivity headers, so every pass including thermal-IR runs.
func glassProduct() *product.Product {
	return &product.Product{
		Type:       product.TypeGlazing,
		Subtype:    product.SubtypeMonolithic,
		CoatedSide: "neither",
		PhysicalProperties: &product.PhysicalProperties{
			Thickness:                 fp(3.048),
			PredefinedEmissivityFront: fp(0.84),
			PredefinedEmissivityBack:  fp(0.84),
			OpticalProperties: &product.OpticalProperties{
				OpticalData: &product.OpticalData{
					AngleBlocks: []product.AngleBlock{{
						WavelengthData: []product.WavelengthPoint{
							{W: 0.3, Specular: mv(0.002, 0.002, 0.047, 0.048)},
							{W: 0.5, Specular: mv(0.89, 0.89, 0.082, 0.082)},
							{W: 2.5, Specular: mv(0.82, 0.82, 0.068, 0.068)},
						},
					}},
				},
			},
		},
	}
}

// shortWaveProduct has no emissivity/TIR headers, no prior summaries, and no
// measurements past the visible/solar range, so thermal-IR has nothing to say.
func shortWaveProduct() *product.Product {
	p := glassProduct()
	p.PhysicalProperties.PredefinedEmissivityFront = nil
	p.PhysicalProperties.PredefinedEmissivityBack = nil
	return p
}

func opticalFixture() *engine.OpticalResults {
	return &engine.OpticalResults{
		Front: engine.SideResults{
			Transmittance: engine.FluxResults{DirectDirect: 0.846, DirectHemispherical: 0.846, DiffuseDiffuse: 0.775},
			Reflectance:   engine.FluxResults{DirectDirect: 0.075, DirectHemispherical: 0.075, DiffuseDiffuse: 0.138},
		},
		Back: engine.SideResults{
			Transmittance: engine.FluxResults{DirectDirect: 0.846, DirectHemispherical: 0.846, DiffuseDiffuse: 0.775},
			Reflectance:   engine.FluxResults{DirectDirect: 0.076, DirectHemispherical: 0.076, DiffuseDiffuse: 0.139},
		},
	}
}

func colorCell(seed float64) engine.ColorComponents {
	return engine.ColorComponents{
		Trichromatic: &engine.Trichromatic{X: seed, Y: seed + 1, Z: seed + 2},
		Lab:          &engine.Lab{L: seed + 3, A: seed + 4, B: seed + 5},
		RGB:          &engine.RGB{R: seed + 6, G: seed + 7, B: seed + 8},
	}
}

func colorFlux(seed float64) engine.ColorFluxResults {
	return engine.ColorFluxResults{
		DirectDirect:        colorCell(seed),
		DirectDiffuse:       colorCell(seed + 10),
		DirectHemispherical: colorCell(seed + 20),
		DiffuseDiffuse:      colorCell(seed + 30),
	}
}

func colorFixture() *engine.ColorResults {
	return &engine.ColorResults{
		Front: engine.ColorSideResults{Transmittance: colorFlux(0), Reflectance: colorFlux(100)},
		Back:  engine.ColorSideResults{Transmittance: colorFlux(200), Reflectance: colorFlux(300)},
	}
}

func thermalFixture() *engine.ThermalIRResults {
	return &engine.ThermalIRResults{
		TransmittanceFrontDiffuseDiffuse: 0,
		TransmittanceBackDiffuseDiffuse:  0,
		EmissivityFrontHemispheric:       0.84,
		EmissivityBackHemispheric:        0.82,
	}
}

func TestGenerateBuildsCompleteSummary(t *testing.T) {
	m := newMockEngine()
	o := New(m)

	got, err := o.Generate(context.Background(), glassProduct(), nfrcStandard())
	require.NoError(t, err)
	require.NotNil(t, got)

	require.Equal(t, "NFRC", got.Standard)
	require.NotNil(t, got.Photopic)
	require.NotNil(t, got.Solar)
	require.NotNil(t, got.TDW)
	require.NotNil(t, got.TKR)
	require.NotNil(t, got.TUV)
	require.NotNil(t, got.Color)
	require.NotNil(t, got.ThermalIR)

	// SPF is never evaluated even when the standard lists it.
	require.Nil(t, got.SPF)
	require.Zero(t, m.calls["SPF"])

	require.Equal(t, []string{"PHOTOPIC", "SOLAR", "TDW", "TKR", "TUV", "color", "thermal_ir"}, m.callOrder)
}

func TestGenerateSkipsUnsupportedMethods(t *testing.T) {
	m := newMockEngine()
	o := New(m)
	std := stubStandard{name: "NFRC", methods: []engine.Method{engine.MethodSolar, engine.MethodPhotopic}}

	got, err := o.Generate(context.Background(), glassProduct(), std)
	require.NoError(t, err)

	require.NotNil(t, got.Solar)
	require.NotNil(t, got.Photopic)
	require.Nil(t, got.TUV)
	require.Nil(t, got.TDW)
	require.Nil(t, got.TKR)
	require.Zero(t, m.calls["TUV"])
	require.Zero(t, m.calls["TDW"])
	require.Zero(t, m.calls["TKR"])
}

func TestGenerateAtomicOnMethodFailure(t *testing.T) {
	m := newMockEngine()
	cause := errors.New("singular system matrix")
	m.err["TDW"] = cause
	o := New(m)

	got, err := o.Generate(context.Background(), glassProduct(), nfrcStandard())
	require.Nil(t, got)

	var ce *CalculationError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "tdw", ce.Pass)
	require.ErrorIs(t, err, cause)

	// The failure short-circuits everything after the third method.
	require.Equal(t, 1, m.calls["PHOTOPIC"])
	require.Equal(t, 1, m.calls["SOLAR"])
	require.Equal(t, 1, m.calls["TDW"])
	require.Zero(t, m.calls["TKR"])
	require.Zero(t, m.calls["TUV"])
	require.Zero(t, m.calls["color"])
	require.Zero(t, m.calls["thermal_ir"])
}

func TestGenerateWrapsColorFailure(t *testing.T) {
	m := newMockEngine()
	m.err["color"] = errors.New("color matrix unavailable")
	o := New(m)

	got, err := o.Generate(context.Background(), glassProduct(), nfrcStandard())
	require.Nil(t, got)

	var ce *CalculationError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "color", ce.Pass)
	require.Zero(t, m.calls["thermal_ir"])
}

func TestGenerateWrapsThermalIRFailure(t *testing.T) {
	m := newMockEngine()
	m.err["thermal_ir"] = errors.New("no IR spectrum")
	o := New(m)

	got, err := o.Generate(context.Background(), glassProduct(), nfrcStandard())
	require.Nil(t, got)
	require.Equal(t, "thermal_ir", PassNameFromError(err))
}

func TestGenerateSkipsThermalIRWithoutData(t *testing.T) {
	m := newMockEngine()
	o := New(m)

	got, err := o.Generate(context.Background(), shortWaveProduct(), nfrcStandard())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Solar)
	require.Nil(t, got.ThermalIR)
	require.Zero(t, m.calls["thermal_ir"])
}

func TestGenerateThermalIRFromLongWaveData(t *testing.T) {
	m := newMockEngine()
	o := New(m)

	p := shortWaveProduct()
	records := p.PhysicalProperties.OpticalProperties.OpticalData.AngleBlocks[0].WavelengthData
	p.PhysicalProperties.OpticalProperties.OpticalData.AngleBlocks[0].WavelengthData = append(records,
		product.WavelengthPoint{W: 25.0, Specular: mv(0.0001, 0.0001, 0.05, 0.05)})

	got, err := o.Generate(context.Background(), p, nfrcStandard())
	require.NoError(t, err)
	require.Equal(t, 1, m.calls["thermal_ir"])
	require.NotNil(t, got.ThermalIR)
	require.NotNil(t, got.ThermalIR.AbsorptanceFrontHemispheric)
	require.Equal(t, 0.84, *got.ThermalIR.AbsorptanceFrontHemispheric)
	require.NotNil(t, got.ThermalIR.TransmittanceFrontDiffuseDiffuse)
	require.Equal(t, 0.0, *got.ThermalIR.TransmittanceFrontDiffuseDiffuse)
}

func TestGenerateThermalIRFromPriorSummary(t *testing.T) {
	m := newMockEngine()
	o := New(m)

	p := shortWaveProduct()
	p.IntegratedSpectralAveragesSummaries = []optical.IntegratedSummary{{
		Standard: "NFRC",
		ThermalIR: &optical.ThermalIRResults{
			AbsorptanceFrontHemispheric: fp(0.84),
			AbsorptanceBackHemispheric:  fp(0.82),
		},
	}}

	got, err := o.Generate(context.Background(), p, nfrcStandard())
	require.NoError(t, err)
	require.Equal(t, 1, m.calls["thermal_ir"])
	require.NotNil(t, got.ThermalIR)
}

func TestEvaluateThermalIRShadeMaterialLeavesEmissivityUnset(t *testing.T) {
	m := newMockEngine()
	m.thermal = &engine.ThermalIRResults{
		TransmittanceFrontDiffuseDiffuse: 0.21,
		TransmittanceBackDiffuseDiffuse:  0.22,
		EmissivityFrontHemispheric:       0.77,
		EmissivityBackHemispheric:        0.78,
	}
	o := New(m)
	layer := engine.Layer{Material: engine.MaterialMonolithic}

	got, err := o.evaluateThermalIR(context.Background(), nfrcStandard(), layer, product.SubtypeShadeMaterial)
	require.NoError(t, err)
	require.NotNil(t, got.TransmittanceFrontDiffuseDiffuse)
	require.Equal(t, 0.21, *got.TransmittanceFrontDiffuseDiffuse)
	require.NotNil(t, got.TransmittanceBackDiffuseDiffuse)
	require.Equal(t, 0.22, *got.TransmittanceBackDiffuseDiffuse)
	require.Nil(t, got.AbsorptanceFrontHemispheric)
	require.Nil(t, got.AbsorptanceBackHemispheric)

	got, err = o.evaluateThermalIR(context.Background(), nfrcStandard(), layer, product.SubtypeMonolithic)
	require.NoError(t, err)
	require.NotNil(t, got.AbsorptanceFrontHemispheric)
	require.Equal(t, 0.77, *got.AbsorptanceFrontHemispheric)
	require.NotNil(t, got.AbsorptanceBackHemispheric)
	require.Equal(t, 0.78, *got.AbsorptanceBackHemispheric)
}

func TestGenerateNilInputs(t *testing.T) {
	m := newMockEngine()
	o := New(m)

	_, err := o.Generate(context.Background(), nil, nfrcStandard())
	var ve *convert.ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = o.Generate(context.Background(), glassProduct(), nil)
	require.ErrorAs(t, err, &ve)

	require.Empty(t, m.calls)
}

// Conversion failures attribute bad input to the caller; they must not be
// disguised as calculation failures.
func TestGenerateConversionErrorsPropagateUnwrapped(t *testing.T) {
	m := newMockEngine()
	o := New(m)

	p := glassProduct()
	p.PhysicalProperties.OpticalProperties = nil

	_, err := o.Generate(context.Background(), p, nfrcStandard())
	var moe *convert.MissingOpticalDataError
	require.ErrorAs(t, err, &moe)
	var ce *CalculationError
	require.False(t, errors.As(err, &ce))
	require.Equal(t, "summary", PassNameFromError(err))
	require.Empty(t, m.calls)
}

func TestGenerateHonorsWavelengthModeOption(t *testing.T) {
	m := newMockEngine()
	o := New(m, WithWavelengthMode(convert.DiffuseAsSpecular))

	// The fixture has no diffuse group, so diffuse-as-specular must fail in
	// conversion before any engine call.
	_, err := o.Generate(context.Background(), glassProduct(), nfrcStandard())
	var mfe *convert.MissingFieldError
	require.ErrorAs(t, err, &mfe)
	require.Equal(t, "diffuse", mfe.Field)
	require.Empty(t, m.calls)
}

func TestGenerateNullToZeroOption(t *testing.T) {
	m := newMockEngine()

	p := glassProduct()
	p.PhysicalProperties.OpticalProperties.OpticalData.AngleBlocks[0].WavelengthData[1].Specular.Tb = nil

	_, err := New(m).Generate(context.Background(), p, nfrcStandard())
	var mve *convert.MissingValueError
	require.ErrorAs(t, err, &mve)

	got, err := New(newMockEngine(), WithNullToZero()).Generate(context.Background(), p, nfrcStandard())
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestPassNameFromError(t *testing.T) {
	require.Equal(t, "solar", PassNameFromError(&CalculationError{Pass: "solar", Err: errors.New("x")}))
	require.Equal(t, "summary", PassNameFromError(errors.New("x")))
}
