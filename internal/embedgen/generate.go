package embedgen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/zeebo/xxh3"
)

// Header is the first line of every generated file.
const Header = "// Code generated by embedgen. DO NOT EDIT."

const digestPrefix = "// Digest: xxh3:"

const bytesPerLine = 16

var fileTpl = template.Must(template.New("file").Parse(`{{.Header}}
// Source: {{.Source}}
{{.DigestLine}}

package {{.Package}}

const {{.Backing}} = {{.Literal}}

// {{.Accessor}} returns the contents of {{.Base}}.
{{- if .Binary}} The string holds raw
// bytes and need not be valid UTF-8.{{end}}
func {{.Accessor}}() string {
	return {{.Backing}}
}
`))

// Generator renders resources into Go source for a single package.
type Generator struct {
	Package string
}

// Render returns the gofmt'd Go source for r.
func (g Generator) Render(r Resource) ([]byte, error) {
	if g.Package == "" {
		return nil, fmt.Errorf("render %s: package name is required", r.Name)
	}
	if err := ValidateName(r.Name); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	var literal string
	switch r.Kind {
	case Binary:
		literal = byteLiteral(r.Data)
	case Text:
		literal = strconv.Quote(string(r.Data))
	default:
		return nil, fmt.Errorf("render %s: unsupported kind %s", r.Name, r.Kind)
	}

	base := r.Name
	if r.Source != "" {
		base = filepath.Base(r.Source)
	}

	accessor := r.Accessor()
	data := map[string]any{
		"Header":     Header,
		"Source":     filepath.ToSlash(r.Source),
		"Base":       base,
		"DigestLine": DigestLine(r.Data),
		"Package":    g.Package,
		"Binary":     r.Kind == Binary,
		"Backing":    "embedded" + accessor,
		"Accessor":   accessor,
		"Literal":    literal,
	}

	var buf bytes.Buffer
	if err := fileTpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", r.Name, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("render %s: format: %w", r.Name, err)
	}
	return src, nil
}

// WriteFile renders r into dir and returns the path of the written file.
func (g Generator) WriteFile(dir string, r Resource) (string, error) {
	src, err := g.Render(r)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("write %s: %w", r.Name, err)
	}
	path := filepath.Join(dir, r.FileName())
	if err := os.WriteFile(path, src, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", r.Name, err)
	}
	return path, nil
}

// DigestLine returns the digest comment recorded in generated files.
func DigestLine(data []byte) string {
	return fmt.Sprintf("%s%016x", digestPrefix, xxh3.Hash(data))
}

// byteLiteral spells every byte as a \xNN escape, splitting long data into
// concatenated lines.
func byteLiteral(data []byte) string {
	if len(data) == 0 {
		return `""`
	}

	var b strings.Builder
	for i := 0; i < len(data); i += bytesPerLine {
		if i > 0 {
			b.WriteString(" +\n\t")
		}
		end := min(i+bytesPerLine, len(data))
		b.WriteByte('"')
		for _, c := range data[i:end] {
			fmt.Fprintf(&b, `\x%02x`, c)
		}
		b.WriteByte('"')
	}
	return b.String()
}
