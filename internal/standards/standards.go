// Package standards loads calculation-standard definitions from YAML. A
// definition names the standard and the closed set of optical methods it
// permits; the physics behind each method lives in the engine, not here.
package standards

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/LBNL-ETA/opticalc/internal/engine"
)

//go:embed nfrc_2003.yaml
var nfrc2003YAML []byte

// WavelengthSet describes the spectral range a method integrates over.
// Informational: the engine owns the actual integration tables.
type WavelengthSet struct {
	Source  string  `yaml:"source,omitempty" json:"source,omitempty"`
	Minimum float64 `yaml:"minimum" json:"minimum"`
	Maximum float64 `yaml:"maximum" json:"maximum"`
}

// Definition is one calculation standard as loaded from YAML.
type Definition struct {
	StandardName   string                   `yaml:"name" json:"name"`
	Description    string                   `yaml:"description,omitempty" json:"description,omitempty"`
	MethodNames    []string                 `yaml:"methods" json:"methods"`
	WavelengthSets map[string]WavelengthSet `yaml:"wavelength_sets,omitempty" json:"wavelength_sets,omitempty"`
}

var _ engine.Standard = (*Definition)(nil)

func (d *Definition) Name() string { return d.StandardName }

func (d *Definition) Supports(m engine.Method) bool {
	for _, name := range d.MethodNames {
		if engine.Method(name) == m {
			return true
		}
	}
	return false
}

func (d *Definition) Methods() []engine.Method {
	out := make([]engine.Method, 0, len(d.MethodNames))
	for _, name := range d.MethodNames {
		out = append(out, engine.Method(name))
	}
	return out
}

// Parse decodes one YAML definition. Method names are canonicalized to upper
// case and checked against the known method set; an unrecognized name fails
// the whole load rather than being silently carried along.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse standard definition: %w", err)
	}
	if strings.TrimSpace(def.StandardName) == "" {
		return nil, fmt.Errorf("standard definition has no name")
	}
	if len(def.MethodNames) == 0 {
		return nil, fmt.Errorf("standard %s lists no methods", def.StandardName)
	}
	for i, name := range def.MethodNames {
		canonical := strings.ToUpper(strings.TrimSpace(name))
		if !engine.KnownMethods[engine.Method(canonical)] {
			return nil, fmt.Errorf("standard %s lists unknown method %q", def.StandardName, name)
		}
		def.MethodNames[i] = canonical
	}
	return &def, nil
}

// Load reads one definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// LoadDir reads every .yaml/.yml file in dir, in name order.
func LoadDir(dir string) ([]*Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var defs []*Definition
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
		default:
			continue
		}
		def, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].StandardName < defs[j].StandardName })
	if len(defs) == 0 {
		return nil, fmt.Errorf("no standard definitions in %s", dir)
	}
	return defs, nil
}

// FindByName picks the definition with the given name (case-insensitive)
// from a loaded set.
func FindByName(defs []*Definition, name string) (*Definition, error) {
	for _, def := range defs {
		if strings.EqualFold(def.StandardName, name) {
			return def, nil
		}
	}
	return nil, fmt.Errorf("no standard named %q", name)
}

// NFRC2003 returns the embedded NFRC 2003 definition. The embedded file is
// validated by tests; a parse failure here means a broken build.
func NFRC2003() *Definition {
	def, err := Parse(nfrc2003YAML)
	if err != nil {
		panic("standards: embedded nfrc_2003.yaml is invalid: " + err.Error())
	}
	return def
}
