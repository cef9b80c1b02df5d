package summary

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/LBNL-ETA/opticalc/internal/convert"
	"github.com/LBNL-ETA/opticalc/internal/engine"
	"github.com/LBNL-ETA/opticalc/internal/optical"
	"github.com/LBNL-ETA/opticalc/internal/product"
)

// methodOrder is the fixed sequence of per-method optical passes. SPF is
// absent on purpose: it is inversely related to transmittance and cannot be
// produced by the same spectral-averaging routine as the others, so a
// standard listing SPF still gets no spf block here.
var methodOrder = []engine.Method{
	engine.MethodPhotopic,
	engine.MethodSolar,
	engine.MethodTDW,
	engine.MethodTKR,
	engine.MethodTUV,
}

// thermalIRWavelengthCutoff marks the start of the long-wave infrared range
// in microns. Measurements beyond it let the engine integrate emissivity
// straight from the spectrum.
const thermalIRWavelengthCutoff = 5.0

// Orchestrator drives the calculation engine through every pass a standard
// supports and assembles the results into one summary. A single Generate
// call is all-or-nothing: the caller gets a complete summary or an error,
// never a partially filled one.
type Orchestrator struct {
	engine engine.Engine
	logger *zap.Logger
	tracer trace.Tracer
	mode   convert.WavelengthMode
	opts   convert.NormalizeOptions
}

type Option func(*Orchestrator)

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWavelengthMode selects how specular and diffuse measurement components
// combine into the engine's direct channel. The default is specular-only.
func WithWavelengthMode(mode convert.WavelengthMode) Option {
	return func(o *Orchestrator) { o.mode = mode }
}

// WithNullToZero coerces null or empty measurement sub-values to zero during
// normalization instead of failing.
func WithNullToZero() Option {
	return func(o *Orchestrator) { o.opts.NullToZero = true }
}

func New(eng engine.Engine, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		engine: eng,
		logger: zap.NewNop(),
		tracer: otel.Tracer("github.com/LBNL-ETA/opticalc/internal/summary"),
		mode:   convert.SpecularOnly,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Generate runs every optical method the standard supports, then the color
// pass, then (when the product carries thermal-IR-range data) the thermal-IR
// pass, and returns the assembled summary. Conversion errors propagate
// unwrapped; any failure inside a pass is wrapped into a CalculationError
// carrying the pass name, and nothing computed so far escapes.
func (o *Orchestrator) Generate(ctx context.Context, p *product.Product, std engine.Standard) (*optical.IntegratedSummary, error) {
	if p == nil {
		return nil, &convert.ValidationError{Msg: "cannot generate a summary for a nil product"}
	}
	if std == nil {
		return nil, &convert.ValidationError{Msg: "cannot generate a summary without a calculation standard"}
	}

	layer, err := convert.BuildLayerWithOptions(p, o.mode, std.Name(), o.opts)
	if err != nil {
		return nil, err
	}
	layers := []engine.Layer{layer}

	result := &optical.IntegratedSummary{Standard: std.Name()}

	for _, method := range methodOrder {
		if !std.Supports(method) {
			o.logger.Info("method not supported by standard, skipping",
				zap.String("method", string(method)),
				zap.String("standard", std.Name()))
			continue
		}
		res, err := o.evaluateOptical(ctx, std, layers, method)
		if err != nil {
			return nil, &CalculationError{Pass: strings.ToLower(string(method)), Err: err}
		}
		if err := attachMethodResults(result, method, translateMethodResults(res)); err != nil {
			return nil, &CalculationError{Pass: strings.ToLower(string(method)), Err: err}
		}
		o.logger.Debug("optical pass complete", zap.String("method", string(method)))
	}

	colorRes, err := o.evaluateColor(ctx, std, layers)
	if err != nil {
		return nil, &CalculationError{Pass: "color", Err: err}
	}
	result.Color = translateColorResults(colorRes)
	o.logger.Debug("color pass complete")

	if !declaresThermalIRData(layer) {
		o.logger.Info("product declares no thermal-IR-range data, skipping thermal_ir pass",
			zap.String("standard", std.Name()))
		return result, nil
	}
	tir, err := o.evaluateThermalIR(ctx, std, layer, p.Subtype)
	if err != nil {
		return nil, &CalculationError{Pass: "thermal_ir", Err: err}
	}
	result.ThermalIR = tir
	o.logger.Debug("thermal_ir pass complete")

	return result, nil
}

func (o *Orchestrator) evaluateOptical(ctx context.Context, std engine.Standard, layers []engine.Layer, method engine.Method) (*engine.OpticalResults, error) {
	ctx, span := o.tracer.Start(ctx, "summary.optical", trace.WithAttributes(
		attribute.String("method", string(method)),
		attribute.String("standard", std.Name())))
	defer span.End()

	res, err := o.engine.EvaluateOptical(ctx, std, layers, method)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "optical evaluation failed")
		return nil, err
	}
	return res, nil
}

func (o *Orchestrator) evaluateColor(ctx context.Context, std engine.Standard, layers []engine.Layer) (*engine.ColorResults, error) {
	ctx, span := o.tracer.Start(ctx, "summary.color", trace.WithAttributes(
		attribute.String("standard", std.Name())))
	defer span.End()

	res, err := o.engine.EvaluateColor(ctx, std, layers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "color evaluation failed")
		return nil, err
	}
	return res, nil
}

func (o *Orchestrator) evaluateThermalIR(ctx context.Context, std engine.Standard, layer engine.Layer, subtype product.Subtype) (*optical.ThermalIRResults, error) {
	ctx, span := o.tracer.Start(ctx, "summary.thermal_ir", trace.WithAttributes(
		attribute.String("standard", std.Name())))
	defer span.End()

	res, err := o.engine.EvaluateThermalIR(ctx, std, layer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "thermal-ir evaluation failed")
		return nil, err
	}

	out := &optical.ThermalIRResults{
		TransmittanceFrontDiffuseDiffuse: fptr(res.TransmittanceFrontDiffuseDiffuse),
		TransmittanceBackDiffuseDiffuse:  fptr(res.TransmittanceBackDiffuseDiffuse),
	}
	// For shade materials the engine's emissivity comes from an opaque-sample
	// approximation and is not trustworthy; leaving it unset keeps the
	// predefined header value authoritative downstream.
	if subtype != product.SubtypeShadeMaterial {
		out.AbsorptanceFrontHemispheric = fptr(res.EmissivityFrontHemispheric)
		out.AbsorptanceBackHemispheric = fptr(res.EmissivityBackHemispheric)
	}
	return out, nil
}

// declaresThermalIRData reports whether a thermal-IR evaluation can say
// anything meaningful about the layer: either the spectrum reaches into the
// long-wave infrared, or the resolver already produced at least one
// emissivity/TIR value from headers or prior summaries.
func declaresThermalIRData(layer engine.Layer) bool {
	for _, wm := range layer.Wavelengths {
		if wm.Wavelength > thermalIRWavelengthCutoff {
			return true
		}
	}
	return layer.EmissivityFront != nil || layer.EmissivityBack != nil ||
		layer.TIRFront != nil || layer.TIRBack != nil
}

func attachMethodResults(s *optical.IntegratedSummary, method engine.Method, res *optical.MethodResults) error {
	switch method {
	case engine.MethodPhotopic:
		s.Photopic = res
	case engine.MethodSolar:
		s.Solar = res
	case engine.MethodTDW:
		s.TDW = res
	case engine.MethodTKR:
		s.TKR = res
	case engine.MethodTUV:
		s.TUV = res
	default:
		return fmt.Errorf("no summary field for method %s", method)
	}
	return nil
}
