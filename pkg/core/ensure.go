package core

import (
	"fmt"

	"github.com/arthur-debert/envpath/pkg/logging"
	"github.com/arthur-debert/envpath/pkg/rcfile"
	"github.com/arthur-debert/envpath/pkg/types"
)

// Result is the outcome of EnsurePath
type Result struct {
	Changed      bool     `json:"changed" yaml:"changed"`
	UpdatedFiles []string `json:"updated_files" yaml:"updated_files"`
	Shell        string   `json:"shell" yaml:"shell"`
	Target       string   `json:"target" yaml:"target"`
	Msg          string   `json:"msg,omitempty" yaml:"msg,omitempty"`
}

// EnsurePath makes every startup file of the resolved shell and target
// hold (state present) or not hold (state absent) the PATH snippet for
// opts.Path.
//
// UpdatedFiles lists the files written, in order, and Changed is true when
// there is at least one. Under DryRun nothing is written: Changed reports
// whether any file would change and UpdatedFiles stays empty.
//
// Files are processed in order and a filesystem error aborts the run.
// Files already written before the error keep their new content.
func EnsurePath(opts Options, env types.Env, fs types.FS) (*Result, error) {
	logger := logging.GetLogger("core.ensure")
	done := logging.LogOperationStart(logger, "ensure")
	defer done()

	logger.Info().
		Str("path", opts.Path).
		Str("shell", opts.Shell).
		Str("target", opts.Target).
		Str("state", opts.State).
		Str("home", opts.Home).
		Bool("dryRun", opts.DryRun).
		Msg("Ensuring PATH entry")

	p, err := resolve(opts, env, fs, true)
	if err != nil {
		return nil, err
	}

	result := &Result{
		UpdatedFiles: []string{},
		Shell:        p.shellName,
		Target:       p.target.String(),
	}

	if len(p.files) == 0 {
		result.Msg = noFileMessage(result.Shell, result.Target)
		logger.Info().Str("shell", result.Shell).Str("target", result.Target).Msg(result.Msg)
		return result, nil
	}

	edit := rcfile.Edit{
		Entry: p.path,
		Line:  p.dialect.Render(p.path),
		State: p.state,
	}
	mutator := rcfile.New(fs)

	for _, file := range p.files {
		changed, err := mutator.Apply(file, edit, p.dialect, opts.DryRun)
		if err != nil {
			logger.Error().Err(err).Str("file", file).Msg("Failed to update file")
			return nil, err
		}
		if !changed {
			continue
		}
		if opts.DryRun {
			result.Changed = true
			continue
		}
		result.UpdatedFiles = append(result.UpdatedFiles, file)
	}

	if !opts.DryRun {
		result.Changed = len(result.UpdatedFiles) > 0
	}

	logger.Info().
		Bool("changed", result.Changed).
		Strs("updatedFiles", result.UpdatedFiles).
		Msg("PATH entry ensured")
	return result, nil
}

func noFileMessage(shellName, target string) string {
	return fmt.Sprintf("No suitable config file for shell '%s' and target '%s'", shellName, target)
}
