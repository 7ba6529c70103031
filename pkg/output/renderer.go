package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/envpath/pkg/core"
	"github.com/arthur-debert/envpath/pkg/errors"
	"github.com/arthur-debert/envpath/pkg/logging"
	"github.com/arthur-debert/envpath/pkg/release"
)

// Renderer writes command results in one format.
//
// Text and terminal output are for people: terminal output is styled with
// lipgloss using the embedded styles definition. JSON, YAML and XML carry
// the same fields for scripts.
type Renderer struct {
	w      io.Writer
	format Format
	styles map[string]lipgloss.Style
}

// NewRenderer creates a Renderer. FormatAuto is resolved against w when w
// is a file and means plain text otherwise.
func NewRenderer(w io.Writer, format Format) *Renderer {
	if format == FormatAuto {
		format = FormatText
		if f, ok := w.(*os.File); ok {
			format = DetectFormat(f)
		}
	}

	r := &Renderer{w: w, format: format}
	if format == FormatTerminal {
		r.styles = DefaultStyles().Build(lipgloss.NewRenderer(w))
	}

	logger := logging.GetLogger("output")
	logger.Debug().
		Str("format", format.String()).
		Msg("Created renderer")
	return r
}

// Format returns the resolved output format
func (r *Renderer) Format() Format {
	return r.format
}

// Result renders an EnsurePath result
func (r *Renderer) Result(res *core.Result) error {
	if r.format.Structured() {
		return r.structured("result", res)
	}
	return r.text(r.resultText(res))
}

// Status renders a status report
func (r *Renderer) Status(report *core.StatusReport) error {
	if r.format.Structured() {
		return r.structured("status", report)
	}
	return r.text(r.statusText(report))
}

// Snippet renders a snippet. Text output is the bare snippet so it can be
// pasted or evaluated.
func (r *Renderer) Snippet(res *core.SnippetResult) error {
	if r.format.Structured() {
		return r.structured("snippet", res)
	}
	return r.text(res.Snippet + "\n")
}

// Files renders the resolved startup files, one per line in text output
func (r *Renderer) Files(res *core.FilesResult) error {
	if r.format.Structured() {
		return r.structured("files", res)
	}
	return r.text(r.filesText(res))
}

// Latest renders a release lookup. Text output is the bare tag.
func (r *Renderer) Latest(res *release.Latest) error {
	if r.format.Structured() {
		return r.structured("release", res)
	}
	return r.text(r.style(styleTag, res.LatestVersion) + "\n")
}

// ErrorReport is the structured form of a failed command
type ErrorReport struct {
	Error   string                 `json:"error" yaml:"error"`
	Code    string                 `json:"code" yaml:"code"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// Error renders err
func (r *Renderer) Error(err error) error {
	if r.format.Structured() {
		return r.structured("error", &ErrorReport{
			Error:   err.Error(),
			Code:    string(errors.GetErrorCode(err)),
			Details: errors.GetErrorDetails(err),
		})
	}
	return r.text(r.style(styleError, msgErrorPrefix) + " " + err.Error() + "\n")
}

func (r *Renderer) structured(root string, v interface{}) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatXML:
		return encodeXML(r.w, root, v)
	default:
		return fmt.Errorf("format %s is not structured", r.format)
	}
}

func (r *Renderer) text(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

// style renders s with the named style in terminal output and returns it
// unchanged otherwise
func (r *Renderer) style(name, s string) string {
	if r.styles == nil {
		return s
	}
	if st, ok := r.styles[name]; ok {
		return st.Render(s)
	}
	return s
}
