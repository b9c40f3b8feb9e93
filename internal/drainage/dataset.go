package drainage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed data/drainage.json
var embeddedDataset []byte

// EmbeddedSource names the built-in dataset in errors and logs.
const EmbeddedSource = "embedded:drainage.json"

// Dataset is the immutable organ → routes mapping plus its node pool.
// It is safe for concurrent use once returned by a loader.
type Dataset struct {
	source    string
	organs    []Organ
	byKey     map[string]int
	nodes     NodeSet
	templates map[string]*template.Template
}

// CaseData fills an organ's clinical case template.
type CaseData struct {
	Name  string
	Age   int
	Sex   string
	Route string
	Organ string
}

type document struct {
	Organs []Organ `json:"organs"`
}

var loadDefault = sync.OnceValues(func() (*Dataset, error) {
	return LoadBytes(EmbeddedSource, embeddedDataset)
})

// Default returns the built-in dataset. It is parsed once per process.
func Default() (*Dataset, error) {
	return loadDefault()
}

// Load reads a dataset from a JSON or YAML file. An empty path selects
// the built-in dataset.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return LoadBytes(path, data)
}

// LoadBytes parses and validates a dataset document. YAML is accepted when
// source ends in .yaml or .yml.
func LoadBytes(source string, data []byte) (*Dataset, error) {
	if ext := strings.ToLower(filepath.Ext(source)); ext == ".yaml" || ext == ".yml" {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("parse YAML: %w", err)}
		}
		data = converted
	}

	if problems, err := validateSchema(data); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	} else if len(problems) > 0 {
		return nil, &LoadError{Source: source, Problems: problems}
	}

	var doc document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("decode: %w", err)}
	}

	return newDataset(source, doc.Organs)
}

// New builds a dataset from in-memory organs, applying the same structural
// validation as the file loaders.
func New(source string, organs []Organ) (*Dataset, error) {
	return newDataset(source, cloneOrgans(organs))
}

func newDataset(source string, organs []Organ) (*Dataset, error) {
	problems, templates := validateOrgans(organs)
	if len(problems) > 0 {
		return nil, &LoadError{Source: source, Problems: problems}
	}

	byKey := make(map[string]int, len(organs))
	for i, o := range organs {
		byKey[o.Key] = i
	}

	return &Dataset{
		source:    source,
		organs:    organs,
		byKey:     byKey,
		nodes:     newNodeSet(organs),
		templates: templates,
	}, nil
}

// Source returns where the dataset was loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// Organs returns organs in load order. Route slices are shared and must
// not be modified.
func (d *Dataset) Organs() []Organ {
	return slices.Clone(d.organs)
}

// Organ looks up an organ by key.
func (d *Dataset) Organ(key string) (Organ, bool) {
	i, ok := d.byKey[key]
	if !ok {
		return Organ{}, false
	}
	return d.organs[i], true
}

// CaseOrgans returns the organs that carry a clinical case template.
func (d *Dataset) CaseOrgans() []Organ {
	var out []Organ
	for _, o := range d.organs {
		if o.HasCase() {
			out = append(out, o)
		}
	}
	return out
}

// AllNodes returns every distinct structure name across all routes.
func (d *Dataset) AllNodes() NodeSet {
	return d.nodes
}

// RenderCase executes the clinical case template of the given organ.
func (d *Dataset) RenderCase(key string, data CaseData) (string, error) {
	tmpl, ok := d.templates[key]
	if !ok {
		return "", fmt.Errorf("organ %q has no clinical case template", key)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render case for %q: %w", key, err)
	}
	return b.String(), nil
}

func cloneOrgans(organs []Organ) []Organ {
	out := make([]Organ, len(organs))
	for i, o := range organs {
		o.Routes = slices.Clone(o.Routes)
		for j := range o.Routes {
			o.Routes[j].Path = slices.Clone(o.Routes[j].Path)
		}
		out[i] = o
	}
	return out
}

func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
