package report

import (
	"encoding"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Format is an output format of reports.
type Format int

const (
	_ Format = iota
	FormatText
	FormatJSON
)

func (f Format) String() string {
	v, err := f.MarshalText()
	if err != nil {
		return fmt.Sprintf("format-invalid(%d)", int(f))
	}

	return string(v)
}

var (
	_ encoding.TextUnmarshaler = (*Format)(nil)
	_ encoding.TextMarshaler   = Format(0)
)

func (f *Format) UnmarshalText(b []byte) error {
	switch string(b) {
	case "text":
		*f = FormatText
		return nil
	case "json":
		*f = FormatJSON
		return nil
	default:
		return fmt.Errorf("unknown output format %q", b)
	}
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case FormatText:
		return []byte("text"), nil
	case FormatJSON:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid Format(%d)", int(f))
	}
}

type jsonReport struct {
	Stage   string `json:"stage"`
	Rule    string `json:"rule,omitempty"`
	Code    string `json:"code,omitempty"`
	File    string `json:"file"`
	Line    int    `json:"line"`
	Scope   string `json:"scope,omitempty"`
	Message string `json:"message"`
}

// Write renders reports in the given format. JSON is written one object per line.
func Write(w io.Writer, reports []Report, format Format) error {
	switch format {
	case FormatText:
		for _, rep := range reports {
			if _, err := io.WriteString(w, textLine(rep)); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		for _, rep := range reports {
			jr := jsonReport{
				Stage:   rep.Stage.String(),
				File:    rep.File,
				Line:    rep.Line,
				Scope:   rep.Scope,
				Message: rep.Message,
			}
			if rep.Rule.Valid() {
				jr.Rule = rep.Rule.Name()
				jr.Code = rep.Rule.Code()
			}
			if err := enc.Encode(jr); err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
		}
	default:
		return fmt.Errorf("unsupported output format %s", format)
	}

	return nil
}

func textLine(rep Report) string {
	var scope string
	if rep.Scope != "" {
		scope = " [" + rep.Scope + "]"
	}

	if !rep.Rule.Valid() {
		return fmt.Sprintf("%s:%d:%s %s: %s\n", rep.File, rep.Line, scope, rep.Stage, rep.Message)
	}

	return fmt.Sprintf("%s:%d:%s %s: %s\n", rep.File, rep.Line, scope, rep.Rule, rep.Message)
}
