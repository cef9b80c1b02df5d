package convert

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/LBNL-ETA/opticalc/internal/engine"
	"github.com/LBNL-ETA/opticalc/internal/product"
)

// WavelengthMode selects how the specular and diffuse components of a raw
// wavelength record become the engine's single direct channel. The modes
// are mutually exclusive selections, not flags.
type WavelengthMode string

const (
	// SpecularOnly uses the specular component and requires it on every
	// record.
	SpecularOnly WavelengthMode = "SPECULAR_ONLY"
	// DiffuseAsSpecular relabels the diffuse component as the direct
	// channel and requires it on every record.
	DiffuseAsSpecular WavelengthMode = "DIFFUSE_AS_SPECULAR"
	// CombineSpecularAndDiffuse sums both components element-wise. An
	// absent component counts as all-zero; this is the only place in the
	// conversion where zero-substitution is implicit.
	CombineSpecularAndDiffuse WavelengthMode = "COMBINE_SPECULAR_AND_DIFFUSE"
)

// ParseWavelengthMode maps a config token to a mode. Unknown tokens are an
// error, never a silent default.
func ParseWavelengthMode(s string) (WavelengthMode, error) {
	switch m := WavelengthMode(strings.ToUpper(strings.TrimSpace(s))); m {
	case SpecularOnly, DiffuseAsSpecular, CombineSpecularAndDiffuse:
		return m, nil
	default:
		return "", &ValidationError{Msg: fmt.Sprintf("unknown wavelength mode %q", s)}
	}
}

type NormalizeOptions struct {
	// NullToZero coerces null or empty measurement sub-values to zero
	// instead of failing with MissingValueError. It never applies to the
	// wavelength itself.
	NullToZero bool
}

// Normalize converts raw wavelength records into engine measurements,
// preserving input order. Order is physically meaningful: it defines the
// sampled spectrum and is never re-sorted.
func Normalize(records []product.WavelengthPoint, mode WavelengthMode) ([]engine.WavelengthMeasurement, error) {
	return NormalizeWithOptions(records, mode, NormalizeOptions{})
}

func NormalizeWithOptions(records []product.WavelengthPoint, mode WavelengthMode, opts NormalizeOptions) ([]engine.WavelengthMeasurement, error) {
	switch mode {
	case SpecularOnly, DiffuseAsSpecular, CombineSpecularAndDiffuse:
	default:
		return nil, &ValidationError{Msg: fmt.Sprintf("unknown wavelength mode %q", mode)}
	}

	out := make([]engine.WavelengthMeasurement, 0, len(records))
	for i, rec := range records {
		w, ok := toFloat(rec.W)
		if !ok || w <= 0 {
			return nil, &MissingFieldError{Record: i, Field: "w"}
		}

		var comp engine.MeasurementComponent
		switch mode {
		case SpecularOnly:
			if rec.Specular == nil {
				return nil, &MissingFieldError{Record: i, Field: "specular"}
			}
			c, err := coerceComponent(i, rec.Specular, opts.NullToZero)
			if err != nil {
				return nil, err
			}
			comp = c
		case DiffuseAsSpecular:
			if rec.Diffuse == nil {
				return nil, &MissingFieldError{Record: i, Field: "diffuse"}
			}
			c, err := coerceComponent(i, rec.Diffuse, opts.NullToZero)
			if err != nil {
				return nil, err
			}
			comp = c
		case CombineSpecularAndDiffuse:
			if rec.Specular == nil && rec.Diffuse == nil {
				return nil, &MissingFieldError{Record: i, Field: "specular/diffuse"}
			}
			var spec, diff engine.MeasurementComponent
			if rec.Specular != nil {
				c, err := coerceComponent(i, rec.Specular, opts.NullToZero)
				if err != nil {
					return nil, err
				}
				spec = c
			}
			if rec.Diffuse != nil {
				c, err := coerceComponent(i, rec.Diffuse, opts.NullToZero)
				if err != nil {
					return nil, err
				}
				diff = c
			}
			comp = engine.MeasurementComponent{
				Tf: spec.Tf + diff.Tf,
				Tb: spec.Tb + diff.Tb,
				Rf: spec.Rf + diff.Rf,
				Rb: spec.Rb + diff.Rb,
			}
		}

		out = append(out, engine.WavelengthMeasurement{Wavelength: w, Direct: comp})
	}
	return out, nil
}

func coerceComponent(record int, mv *product.MeasurementValues, nullToZero bool) (engine.MeasurementComponent, error) {
	var c engine.MeasurementComponent
	fields := []struct {
		name string
		raw  any
		dst  *float64
	}{
		{"tf", mv.Tf, &c.Tf},
		{"tb", mv.Tb, &c.Tb},
		{"rf", mv.Rf, &c.Rf},
		{"rb", mv.Rb, &c.Rb},
	}
	for _, f := range fields {
		v, ok := toFloat(f.raw)
		if !ok {
			if nullToZero {
				continue
			}
			return engine.MeasurementComponent{}, &MissingValueError{Record: record, Field: f.name}
		}
		*f.dst = v
	}
	return c, nil
}

// toFloat coerces the value shapes legacy submission files deliver: JSON
// numbers, json.Number, numeric strings, and Go ints from hand-built
// records. Nil and empty strings are not coercible.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
