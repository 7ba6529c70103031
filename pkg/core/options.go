package core

import (
	"strings"

	"github.com/arthur-debert/envpath/pkg/errors"
	"github.com/arthur-debert/envpath/pkg/paths"
	"github.com/arthur-debert/envpath/pkg/shell"
	"github.com/arthur-debert/envpath/pkg/types"
)

// Options contains the inputs of one invocation
type Options struct {
	// Path is the directory to add to or remove from PATH
	Path string

	// Shell forces a dialect. Empty means detect.
	Shell string

	// Target is "profile" or "rc". Empty means profile.
	Target string

	// State is "present" or "absent". Empty means present.
	State string

	// Base directory overrides. Empty fields are unset.
	Home          string
	XDGConfigHome string
	ZDotDir       string

	DryRun bool
}

// plan is an invocation with every input resolved
type plan struct {
	// shellName is the detected name, which may be a shell without its
	// own dialect (ksh, dash). It is what results report.
	shellName string
	dialect   shell.Dialect
	target    types.Target
	state     types.State
	dirs      paths.Dirs
	files     []string
	path      string
}

// resolve validates opts and resolves dialect, directories and files.
// The path is only required by operations that render a snippet.
func resolve(opts Options, env types.Env, fs types.FS, requirePath bool) (*plan, error) {
	if requirePath && strings.TrimSpace(opts.Path) == "" {
		return nil, errors.New(errors.ErrInvalidInput, "path is required")
	}

	target, err := types.ParseTarget(opts.Target)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid target").
			WithDetail("target", opts.Target)
	}
	state, err := types.ParseState(opts.State)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid state").
			WithDetail("state", opts.State)
	}

	dirs, err := paths.ResolveDirs(paths.Overrides{
		Home:          opts.Home,
		XDGConfigHome: opts.XDGConfigHome,
		ZDotDir:       opts.ZDotDir,
	}, env)
	if err != nil {
		return nil, err
	}

	name := shell.DetectName(opts.Shell, strings.TrimSpace(opts.Home), env, fs)
	dialect := shell.Lookup(name)

	return &plan{
		shellName: name,
		dialect:   dialect,
		target:    target,
		state:     state,
		dirs:      dirs,
		files:     dialect.Files(target, dirs),
		path:      opts.Path,
	}, nil
}
