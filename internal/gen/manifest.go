// Package gen turns a bus manifest into generated Go source: one struct
// field and one typed accessor per declared key, so key resolution and kind
// checking happen entirely at compile time in the consuming code.
package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	jsoncodec "github.com/Mrunmoy/regbus/internal/runtime/jsoncodec"
)

// Kind names a channel kind in a manifest.
type Kind string

const (
	// KindData declares a double-buffered latest-value channel.
	KindData Kind = "data"
	// KindCmd declares a one-shot edge-triggered command channel.
	KindCmd Kind = "cmd"
)

// KeyDecl declares one channel: its key name, payload type, and kind.
type KeyDecl struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
	Kind Kind   `yaml:"kind" json:"kind"`
}

// Manifest is the closed key set and trait table of one bus, as read from a
// YAML or JSON file.
type Manifest struct {
	// Package is the Go package the generated file belongs to.
	Package string `yaml:"package" json:"package"`
	// Bus is the exported name of the generated bus type.
	Bus string `yaml:"bus" json:"bus"`
	// Keys lists the channels in declared order; order fixes each key's
	// storage position.
	Keys []KeyDecl `yaml:"keys" json:"keys"`
}

// Load reads and parses a manifest file. The format follows the extension:
// .json is decoded as JSON, everything else as YAML.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("regbus-gen: read manifest: %w", err)
	}

	var m Manifest
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = jsoncodec.Unmarshal(data, &m)
	} else {
		err = yaml.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("regbus-gen: parse manifest %s: %w", path, err)
	}

	m.normalize()
	return &m, nil
}

func (m *Manifest) normalize() {
	m.Package = strings.TrimSpace(m.Package)
	m.Bus = strings.TrimSpace(m.Bus)
	for i := range m.Keys {
		m.Keys[i].Name = strings.TrimSpace(m.Keys[i].Name)
		m.Keys[i].Type = strings.TrimSpace(m.Keys[i].Type)
		m.Keys[i].Kind = Kind(strings.ToLower(strings.TrimSpace(string(m.Keys[i].Kind))))
	}
}

// Validate checks the manifest for everything the generated code cannot
// survive: missing names, malformed identifiers, duplicate or unknown keys.
// Returns an error describing every violation.
func (m *Manifest) Validate() error {
	var errs []error

	if m.Package == "" {
		errs = append(errs, errors.New("manifest: package is required"))
	} else if !isIdentifier(m.Package) {
		errs = append(errs, fmt.Errorf("manifest: package %q is not a valid identifier", m.Package))
	}

	if m.Bus == "" {
		errs = append(errs, errors.New("manifest: bus name is required"))
	} else if !isExportedIdentifier(m.Bus) {
		errs = append(errs, fmt.Errorf("manifest: bus name %q must be an exported identifier", m.Bus))
	}

	if len(m.Keys) == 0 {
		errs = append(errs, errors.New("manifest: at least one key is required"))
	}

	seen := make(map[string]struct{}, len(m.Keys))
	for i, k := range m.Keys {
		switch {
		case k.Name == "":
			errs = append(errs, fmt.Errorf("manifest: key %d: name is required", i))
		case !isExportedIdentifier(k.Name):
			errs = append(errs, fmt.Errorf("manifest: key %q must be an exported identifier", k.Name))
		default:
			if _, dup := seen[k.Name]; dup {
				errs = append(errs, fmt.Errorf("manifest: duplicate key %q", k.Name))
			}
			seen[k.Name] = struct{}{}
		}

		if k.Type == "" {
			errs = append(errs, fmt.Errorf("manifest: key %q: payload type is required", k.Name))
		}

		switch k.Kind {
		case KindData, KindCmd:
		default:
			errs = append(errs, fmt.Errorf("manifest: key %q: kind must be %q or %q, got %q", k.Name, KindData, KindCmd, k.Kind))
		}
	}

	return errors.Join(errs...)
}

func isIdentifier(s string) bool {
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return s != ""
}

func isExportedIdentifier(s string) bool {
	if !isIdentifier(s) {
		return false
	}
	return unicode.IsUpper([]rune(s)[0])
}
