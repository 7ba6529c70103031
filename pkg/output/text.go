package output

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/envpath/pkg/core"
)

// Style names from the styles definition
const (
	styleHeader   = "Header"
	styleSuccess  = "Success"
	styleError    = "Error"
	styleWarning  = "Warning"
	styleMuted    = "Muted"
	styleFilePath = "FilePath"
	styleTag      = "Tag"
	styleDryRun   = "DryRunBanner"
)

// Text output messages
const (
	msgErrorPrefix   = "Error:"
	msgUpdated       = "updated"
	msgDryRunChanges = "[dry-run] changes needed"
	msgUpToDate      = "already up to date"
	msgContext       = "shell: %s, target: %s"
	msgPresent       = "present"
	msgMissing       = "missing"
	msgNoFile        = "no file"
)

func (r *Renderer) resultText(res *core.Result) string {
	var b strings.Builder

	switch {
	case res.Msg != "":
		b.WriteString(r.style(styleWarning, res.Msg) + "\n")
	case len(res.UpdatedFiles) > 0:
		for _, f := range res.UpdatedFiles {
			fmt.Fprintf(&b, "%s %s\n", r.style(styleSuccess, msgUpdated), r.style(styleFilePath, f))
		}
	case res.Changed:
		b.WriteString(r.style(styleDryRun, msgDryRunChanges) + "\n")
	default:
		b.WriteString(r.style(styleMuted, msgUpToDate) + "\n")
	}

	b.WriteString(r.style(styleMuted, fmt.Sprintf(msgContext, res.Shell, res.Target)) + "\n")
	return b.String()
}

func (r *Renderer) statusText(report *core.StatusReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", r.style(styleHeader, report.Path))
	b.WriteString(r.style(styleMuted, fmt.Sprintf(msgContext, report.Shell, report.Target)) + "\n")
	if report.Msg != "" {
		b.WriteString(r.style(styleWarning, report.Msg) + "\n")
	}

	for _, f := range report.Files {
		var label string
		switch {
		case f.Present:
			label = r.style(styleSuccess, fmt.Sprintf("%-8s", msgPresent))
		case f.Exists:
			label = r.style(styleWarning, fmt.Sprintf("%-8s", msgMissing))
		default:
			label = r.style(styleMuted, fmt.Sprintf("%-8s", msgNoFile))
		}
		fmt.Fprintf(&b, "  %s %s\n", label, r.style(styleFilePath, f.Path))
	}
	return b.String()
}

func (r *Renderer) filesText(res *core.FilesResult) string {
	if len(res.Files) == 0 {
		return r.style(styleWarning, res.Msg) + "\n"
	}
	var b strings.Builder
	for _, f := range res.Files {
		b.WriteString(f + "\n")
	}
	return b.String()
}
