package rcfile

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/envpath/pkg/errors"
	"github.com/arthur-debert/envpath/pkg/logging"
	"github.com/arthur-debert/envpath/pkg/types"
	"github.com/rs/zerolog"
)

// File and directory modes for files envpath creates
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Matcher finds and removes the snippet for a path entry in file content.
// shell.Dialect satisfies it.
type Matcher interface {
	Exists(content, entry string) bool
	Strip(content, entry string) string
}

// Edit is the desired state of one path entry in a startup file
type Edit struct {
	// Entry is the directory being added to or removed from PATH
	Entry string
	// Line is the rendered snippet, without trailing newline
	Line  string
	State types.State
}

// Mutator applies edits to startup files
type Mutator struct {
	FS     types.FS
	Logger zerolog.Logger
}

// New creates a Mutator on fs
func New(fs types.FS) *Mutator {
	return &Mutator{
		FS:     fs,
		Logger: logging.GetLogger("rcfile"),
	}
}

// Apply brings file in line with edit and reports whether the file changed,
// or under dryRun whether it would have. A missing file is created (with
// its parent directories) only when the entry must be present.
func (m *Mutator) Apply(file string, edit Edit, matcher Matcher, dryRun bool) (bool, error) {
	logger := m.Logger.With().
		Str("file", file).
		Str("entry", edit.Entry).
		Str("state", edit.State.String()).
		Bool("dryRun", dryRun).
		Logger()

	info, err := m.FS.Stat(file)
	if err != nil {
		if !os.IsNotExist(err) {
			return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", file).
				WithDetail("path", file)
		}
		return m.create(logger, file, edit, dryRun)
	}

	if !info.Mode().IsRegular() {
		return false, errors.Newf(errors.ErrFileAccess, "%s is not a regular file", file).
			WithDetail("path", file)
	}

	return m.update(logger, file, edit, matcher, dryRun)
}

func (m *Mutator) create(logger zerolog.Logger, file string, edit Edit, dryRun bool) (bool, error) {
	if edit.State != types.StatePresent {
		logger.Debug().Msg("File does not exist, nothing to remove")
		return false, nil
	}
	if dryRun {
		logger.Info().Msg("Would create file")
		return true, nil
	}

	dir := filepath.Dir(file)
	if err := m.FS.MkdirAll(dir, DirPerm); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", dir).
			WithDetail("path", dir)
	}
	if err := m.FS.WriteFile(file, []byte(edit.Line+"\n"), FilePerm); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileCreate, "cannot create %s", file).
			WithDetail("path", file)
	}

	logger.Info().Msg("Created file with PATH entry")
	return true, nil
}

func (m *Mutator) update(logger zerolog.Logger, file string, edit Edit, matcher Matcher, dryRun bool) (changed bool, err error) {
	f, err := m.FS.OpenFile(file, os.O_RDWR, FilePerm)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", file).
			WithDetail("path", file)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			changed = false
			err = errors.Wrapf(cerr, errors.ErrFileWrite, "cannot close %s", file).
				WithDetail("path", file)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", file).
			WithDetail("path", file)
	}
	content := string(data)
	exists := matcher.Exists(content, edit.Entry)

	switch {
	case edit.State == types.StatePresent && !exists:
		if dryRun {
			logger.Info().Msg("Would append PATH entry")
			return true, nil
		}
		if err := appendLine(f, content, edit.Line); err != nil {
			return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot append to %s", file).
				WithDetail("path", file)
		}
		logger.Info().Msg("Appended PATH entry")
		return true, nil

	case edit.State == types.StateAbsent && exists:
		if dryRun {
			logger.Info().Msg("Would remove PATH entry")
			return true, nil
		}
		if err := rewrite(f, matcher.Strip(content, edit.Entry)); err != nil {
			return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot rewrite %s", file).
				WithDetail("path", file)
		}
		logger.Info().Msg("Removed PATH entry")
		return true, nil
	}

	logger.Debug().Bool("exists", exists).Msg("File already in desired state")
	return false, nil
}

// appendLine writes line at the end of f, starting a new line first when
// content does not end with one
func appendLine(f types.File, content, line string) error {
	var b strings.Builder
	if content != "" && !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(line)
	b.WriteString("\n")

	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return err
	}
	_, err := io.WriteString(f, b.String())
	return err
}

// rewrite replaces the content of f
func rewrite(f types.File, content string) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	_, err := io.WriteString(f, content)
	return err
}
