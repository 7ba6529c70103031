// pkg/shell/detect_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Memory FS
// PURPOSE: Test shell detection from explicit names, $SHELL and passwd

package shell_test

import (
	"testing"

	"github.com/arthur-debert/envpath/pkg/shell"
	"github.com/arthur-debert/envpath/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDetectName(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithPasswd(
			"# comment",
			"root:x:0:0:root:/root:/bin/bash",
			"alice:x:1000:1000:Alice:/home/alice:/usr/bin/fish",
			"bob:x:1001:1001::/home/bob/:/bin/ZSH",
			"nologin:x:1002:1002::/home/nologin:",
		)

	tests := []struct {
		name     string
		explicit string
		home     string
		shellEnv string
		want     string
	}{
		{"explicit wins", "Zsh ", "/home/alice", "/bin/bash", "zsh"},
		{"from SHELL", "", "", "/usr/local/bin/fish", "fish"},
		{"SHELL unset", "", "", "", "sh"},
		{"SHELL uppercase", "", "", "/bin/BASH", "bash"},
		{"home override uses passwd", "", "/home/alice", "/bin/bash", "fish"},
		{"passwd home with trailing slash", "", "/home/bob", "/bin/bash", "zsh"},
		{"passwd empty shell field", "", "/home/nologin", "/bin/bash", "sh"},
		{"home override without entry", "", "/home/nobody", "/bin/bash", "sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := env.Env
			e.Shell = tt.shellEnv
			assert.Equal(t, tt.want, shell.DetectName(tt.explicit, tt.home, e, env.FS))
		})
	}
}

func TestDetectName_UnreadablePasswd(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Env.PasswdFile = "/does/not/exist"

	assert.Equal(t, "sh", shell.DetectName("", "/home/u", env.Env, env.FS))
}

func TestDetect_UnknownShellIsPosix(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).WithShell("/bin/tcsh")

	assert.Equal(t, "tcsh", shell.DetectName("", "", env.Env, env.FS))
	assert.Equal(t, "sh", shell.Detect("", "", env.Env, env.FS).Name())
}
