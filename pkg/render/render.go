package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

type Format int

const (
	FormatTable Format = iota
	FormatJSON
	FormatYAML
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table", "text":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatTable, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "table"
	}
}

// Renderer writes views to w. Table output is meant for humans, json and yaml carry
// the complete view.
type Renderer struct {
	w      io.Writer
	format Format
}

type Option func(r *Renderer)

func WithFormat(f Format) Option {
	return func(r *Renderer) {
		r.format = f
	}
}

func NewRenderer(w io.Writer, opts ...Option) *Renderer {
	ret := &Renderer{w: w, format: FormatTable}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (r *Renderer) Format() Format {
	return r.format
}

// encode writes v in the structured output formats
func (r *Renderer) encode(v any) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		return r.encodeYAML(v)
	default:
		return fmt.Errorf("encode %s: %w", r.format, ErrUnknownFormat)
	}
}

// encodeYAML goes through json so the json tags and marshalers of the views apply.
// Using a yaml.Node keeps the key order of the views.
func (r *Renderer) encodeYAML(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	resetStyle(&node)
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err = r.w.Write(buf.Bytes())
	return err
}

// resetStyle switches the json flow style to yaml block style
func resetStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		resetStyle(child)
	}
}

func (r *Renderer) newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleRounded)
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

func (r *Renderer) println(a ...any) error {
	_, err := fmt.Fprintln(r.w, a...)
	return err
}
