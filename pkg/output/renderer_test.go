// pkg/output/renderer_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test text and structured rendering of command results

package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/envpath/pkg/core"
	"github.com/arthur-debert/envpath/pkg/errors"
	"github.com/arthur-debert/envpath/pkg/output"
	"github.com/arthur-debert/envpath/pkg/release"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var updated = &core.Result{
	Changed:      true,
	UpdatedFiles: []string{"/home/u/.bash_profile"},
	Shell:        "bash",
	Target:       "profile",
}

func render(t *testing.T, format output.Format, fn func(r *output.Renderer) error) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fn(output.NewRenderer(&buf, format)))
	return buf.String()
}

func TestResult_Text(t *testing.T) {
	tests := []struct {
		name   string
		result *core.Result
		want   string
	}{
		{"updated", updated, "updated /home/u/.bash_profile\nshell: bash, target: profile\n"},
		{
			"dry run",
			&core.Result{Changed: true, UpdatedFiles: []string{}, Shell: "zsh", Target: "rc"},
			"[dry-run] changes needed\nshell: zsh, target: rc\n",
		},
		{
			"up to date",
			&core.Result{UpdatedFiles: []string{}, Shell: "fish", Target: "profile"},
			"already up to date\nshell: fish, target: profile\n",
		},
		{
			"no file",
			&core.Result{UpdatedFiles: []string{}, Shell: "sh", Target: "rc", Msg: "No suitable config file for shell 'sh' and target 'rc'"},
			"No suitable config file for shell 'sh' and target 'rc'\nshell: sh, target: rc\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, output.FormatText, func(r *output.Renderer) error { return r.Result(tt.result) })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResult_JSON(t *testing.T) {
	got := render(t, output.FormatJSON, func(r *output.Renderer) error { return r.Result(updated) })

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, true, decoded["changed"])
	assert.Equal(t, []interface{}{"/home/u/.bash_profile"}, decoded["updated_files"])
	assert.Equal(t, "bash", decoded["shell"])
	assert.NotContains(t, decoded, "msg")
}

func TestResult_YAML(t *testing.T) {
	got := render(t, output.FormatYAML, func(r *output.Renderer) error { return r.Result(updated) })

	var decoded core.Result
	require.NoError(t, yaml.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, *updated, decoded)
}

func TestResult_XML(t *testing.T) {
	got := render(t, output.FormatXML, func(r *output.Renderer) error { return r.Result(updated) })

	assert.Contains(t, got, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, got, "<result>")
	assert.Contains(t, got, "<changed>true</changed>")
	assert.Contains(t, got, "<item>/home/u/.bash_profile</item>")
	assert.Contains(t, got, "<shell>bash</shell>")
}

func TestStatus_Text(t *testing.T) {
	report := &core.StatusReport{
		Path:   "/home/u/.local/bin",
		Shell:  "zsh",
		Target: "rc",
		Files: []core.FileStatus{
			{Path: "/home/u/.zshrc", Exists: true, Present: true},
			{Path: "/home/u/.other", Exists: true},
			{Path: "/home/u/.none"},
		},
	}

	got := render(t, output.FormatText, func(r *output.Renderer) error { return r.Status(report) })

	assert.Equal(t, "/home/u/.local/bin\n"+
		"shell: zsh, target: rc\n"+
		"  present  /home/u/.zshrc\n"+
		"  missing  /home/u/.other\n"+
		"  no file  /home/u/.none\n", got)
}

func TestSnippetFilesLatest_Text(t *testing.T) {
	got := render(t, output.FormatText, func(r *output.Renderer) error {
		return r.Snippet(&core.SnippetResult{Shell: "fish", Path: "/x", Snippet: "if test -d /x\n  set -gx PATH /x $PATH\nend"})
	})
	assert.Equal(t, "if test -d /x\n  set -gx PATH /x $PATH\nend\n", got)

	got = render(t, output.FormatText, func(r *output.Renderer) error {
		return r.Files(&core.FilesResult{Files: []string{"/a", "/b"}})
	})
	assert.Equal(t, "/a\n/b\n", got)

	got = render(t, output.FormatText, func(r *output.Renderer) error {
		return r.Latest(&release.Latest{Repo: "o/r", LatestVersion: "v1.0.0"})
	})
	assert.Equal(t, "v1.0.0\n", got)

	got = render(t, output.FormatJSON, func(r *output.Renderer) error {
		return r.Latest(&release.Latest{Repo: "o/r", LatestVersion: "v1.0.0"})
	})
	assert.Contains(t, got, `"latest_version": "v1.0.0"`)
}

func TestError(t *testing.T) {
	err := errors.New(errors.ErrReleaseNotFound, "repository 'o/r' releases not found")

	got := render(t, output.FormatText, func(r *output.Renderer) error { return r.Error(err) })
	assert.Equal(t, "Error: [RELEASE_NOT_FOUND] repository 'o/r' releases not found\n", got)

	got = render(t, output.FormatJSON, func(r *output.Renderer) error { return r.Error(err) })
	assert.Contains(t, got, `"code": "RELEASE_NOT_FOUND"`)
}

func TestNewRenderer_AutoOnBufferIsText(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, output.FormatText, output.NewRenderer(&buf, output.FormatAuto).Format())
}

func TestTerminalRendererKeepsText(t *testing.T) {
	got := render(t, output.FormatTerminal, func(r *output.Renderer) error { return r.Result(updated) })
	assert.Contains(t, got, "/home/u/.bash_profile")
	assert.Contains(t, got, "updated")
}
