package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
	"unicode"
)

// Emit renders the manifest into gofmt-formatted Go source. The output is
// deterministic: the same manifest always produces the same bytes.
func Emit(m *Manifest) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := busTemplate.Execute(&buf, m); err != nil {
		return nil, fmt.Errorf("regbus-gen: render: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("regbus-gen: format generated source: %w", err)
	}
	return src, nil
}

func unexport(name string) string {
	r := []rune(name)
	// Lower a leading acronym run as a unit: IMURaw -> imuRaw, IMU -> imu.
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	if n > 1 && n < len(r) {
		n--
	}
	if n == 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		r[i] = unicode.ToLower(r[i])
	}
	s := string(r)
	// Field names must not shadow predeclared identifiers or keywords.
	switch s {
	case "break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var":
		return s + "_"
	}
	return s
}

func kindExpr(k Kind) string {
	if k == KindCmd {
		return "regbus.KindCmd"
	}
	return "regbus.KindData"
}

func storageType(k KeyDecl) string {
	if k.Kind == KindCmd {
		return fmt.Sprintf("regbus.Event[%s]", k.Type)
	}
	return fmt.Sprintf("regbus.Snapshot[%s]", k.Type)
}

var busTemplate = template.Must(template.New("bus").Funcs(template.FuncMap{
	"unexport": unexport,
	"kindExpr": kindExpr,
	"storage":  storageType,
}).Parse(`// Code generated by regbus-gen. DO NOT EDIT.

package {{.Package}}

import (
	"unsafe"

	"github.com/Mrunmoy/regbus"
)

// {{.Bus}}Key identifies one channel of the {{.Bus}} bus.
type {{.Bus}}Key uint8

const (
{{- range $i, $k := .Keys}}
	{{if eq $i 0}}{{$.Bus}}Key{{$k.Name}} {{$.Bus}}Key = iota{{else}}{{$.Bus}}Key{{$k.Name}}{{end}}
{{- end}}
)

// String returns the key's declared name.
func (k {{.Bus}}Key) String() string {
	switch k {
{{- range .Keys}}
	case {{$.Bus}}Key{{.Name}}:
		return "{{.Name}}"
{{- end}}
	default:
		return "unknown"
	}
}

// Kind reports whether the key addresses a data or a command channel.
func (k {{.Bus}}Key) Kind() regbus.Kind {
	switch k {
{{- range .Keys}}
	case {{$.Bus}}Key{{.Name}}:
		return {{kindExpr .Kind}}
{{- end}}
	default:
		return regbus.KindData
	}
}

// {{.Bus}}Keys lists every key of the {{.Bus}} bus in declared order.
func {{.Bus}}Keys() []{{.Bus}}Key {
	return []{{.Bus}}Key{
{{- range .Keys}}
		{{$.Bus}}Key{{.Name}},
{{- end}}
	}
}

// {{.Bus}} owns one channel per declared key. The zero value is ready to
// use; channels live and die with the bus and are never created or removed
// after construction. Keys are fully independent: no operation on one
// orders, synchronises, or affects another.
type {{.Bus}} struct {
{{- range .Keys}}
	{{unexport .Name}} {{storage .}}
{{- end}}
}
{{range .Keys}}
// {{.Name}} returns the {{.Kind}} channel stored under {{$.Bus}}Key{{.Name}}.
func (b *{{$.Bus}}) {{.Name}}() *{{storage .}} { return &b.{{unexport .Name}} }
{{end}}
// Footprint returns the total static storage of all owned channels in
// bytes. The value is fixed at compile time and never grows.
func (b *{{.Bus}}) Footprint() uintptr { return unsafe.Sizeof(*b) }

// Probes returns one lock-free observer per key, in declared order, for
// monitor registration.
func (b *{{.Bus}}) Probes() []regbus.Probe {
	return []regbus.Probe{
{{- range .Keys}}
		{
			Key:  "{{.Name}}",
			Kind: {{kindExpr .Kind}},
			Size: unsafe.Sizeof(b.{{unexport .Name}}),
{{- if eq .Kind "cmd"}}
			Ready: b.{{unexport .Name}}.Pending,
{{- else}}
			Ready:  b.{{unexport .Name}}.Has,
			Writes: b.{{unexport .Name}}.Writes,
{{- end}}
		},
{{- end}}
	}
}
`))
