package core

import (
	"os"

	"github.com/arthur-debert/envpath/pkg/errors"
	"github.com/arthur-debert/envpath/pkg/logging"
	"github.com/arthur-debert/envpath/pkg/types"
)

// FileStatus describes one startup file
type FileStatus struct {
	Path    string `json:"path" yaml:"path"`
	Exists  bool   `json:"exists" yaml:"exists"`
	Present bool   `json:"present" yaml:"present"`
}

// StatusReport is the outcome of Status
type StatusReport struct {
	Path   string       `json:"path" yaml:"path"`
	Shell  string       `json:"shell" yaml:"shell"`
	Target string       `json:"target" yaml:"target"`
	Files  []FileStatus `json:"files" yaml:"files"`
	Msg    string       `json:"msg,omitempty" yaml:"msg,omitempty"`
}

// Present reports whether every file holds the snippet. A report without
// files is never present.
func (r *StatusReport) Present() bool {
	if len(r.Files) == 0 {
		return false
	}
	for _, f := range r.Files {
		if !f.Present {
			return false
		}
	}
	return true
}

// Status reports, for each startup file of the resolved shell and target,
// whether it exists and whether it holds the snippet for opts.Path.
// Nothing is written.
func Status(opts Options, env types.Env, fs types.FS) (*StatusReport, error) {
	logger := logging.GetLogger("core.status")

	p, err := resolve(opts, env, fs, true)
	if err != nil {
		return nil, err
	}

	report := &StatusReport{
		Path:   p.path,
		Shell:  p.shellName,
		Target: p.target.String(),
		Files:  []FileStatus{},
	}
	if len(p.files) == 0 {
		report.Msg = noFileMessage(report.Shell, report.Target)
		return report, nil
	}

	for _, file := range p.files {
		status := FileStatus{Path: file}
		data, err := fs.ReadFile(file)
		switch {
		case err == nil:
			status.Exists = true
			status.Present = p.dialect.Exists(string(data), p.path)
		case os.IsNotExist(err):
		default:
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", file).
				WithDetail("path", file)
		}
		logger.Debug().
			Str("file", file).
			Bool("exists", status.Exists).
			Bool("present", status.Present).
			Msg("Checked file")
		report.Files = append(report.Files, status)
	}

	return report, nil
}

// SnippetResult is the outcome of Snippet
type SnippetResult struct {
	Shell   string `json:"shell" yaml:"shell"`
	Path    string `json:"path" yaml:"path"`
	Snippet string `json:"snippet" yaml:"snippet"`
}

// Snippet renders the snippet for opts.Path in the resolved shell without
// touching any file
func Snippet(opts Options, env types.Env, fs types.FS) (*SnippetResult, error) {
	p, err := resolve(opts, env, fs, true)
	if err != nil {
		return nil, err
	}
	return &SnippetResult{
		Shell:   p.shellName,
		Path:    p.path,
		Snippet: p.dialect.Render(p.path),
	}, nil
}

// FilesResult is the outcome of Files
type FilesResult struct {
	Shell  string   `json:"shell" yaml:"shell"`
	Target string   `json:"target" yaml:"target"`
	Files  []string `json:"files" yaml:"files"`
	Msg    string   `json:"msg,omitempty" yaml:"msg,omitempty"`
}

// Files lists the startup files EnsurePath would manage. opts.Path is not
// needed.
func Files(opts Options, env types.Env, fs types.FS) (*FilesResult, error) {
	p, err := resolve(opts, env, fs, false)
	if err != nil {
		return nil, err
	}

	result := &FilesResult{
		Shell:  p.shellName,
		Target: p.target.String(),
		Files:  []string{},
	}
	result.Files = append(result.Files, p.files...)
	if len(result.Files) == 0 {
		result.Msg = noFileMessage(result.Shell, result.Target)
	}
	return result, nil
}
