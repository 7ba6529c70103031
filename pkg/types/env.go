package types

import "os"

// Environment variable names read by envpath
const (
	EnvHome          = "HOME"
	EnvShell         = "SHELL"
	EnvZDotDir       = "ZDOTDIR"
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
)

// DefaultPasswdFile is the account database consulted for login shells
const DefaultPasswdFile = "/etc/passwd"

// Env is a snapshot of the process environment values the core depends on.
// It is captured once per invocation and passed by value so the core never
// reads ambient process state.
type Env struct {
	Home          string
	Shell         string
	ZDotDir       string
	XDGConfigHome string

	// PasswdFile is the passwd-format account database path
	PasswdFile string
}

// EnvFromOS captures the current process environment
func EnvFromOS() Env {
	return Env{
		Home:          os.Getenv(EnvHome),
		Shell:         os.Getenv(EnvShell),
		ZDotDir:       os.Getenv(EnvZDotDir),
		XDGConfigHome: os.Getenv(EnvXDGConfigHome),
		PasswdFile:    DefaultPasswdFile,
	}
}

// Passwd returns the account database path, defaulting to /etc/passwd
func (e Env) Passwd() string {
	if e.PasswdFile == "" {
		return DefaultPasswdFile
	}
	return e.PasswdFile
}
