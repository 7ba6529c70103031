package output

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatAuto},
		{"auto", FormatAuto},
		{"TEXT", FormatText},
		{"plain", FormatText},
		{"term", FormatTerminal},
		{"json", FormatJSON},
		{"yml", FormatYAML},
		{"xml", FormatXML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestFormat_Structured(t *testing.T) {
	assert.True(t, FormatJSON.Structured())
	assert.True(t, FormatYAML.Structured())
	assert.True(t, FormatXML.Structured())
	assert.False(t, FormatText.Structured())
	assert.False(t, FormatTerminal.Structured())
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, DetectFormat(os.Stdout))
	assert.Equal(t, FormatJSON, Resolve(FormatJSON, os.Stdout))
	assert.Equal(t, FormatText, Resolve(FormatAuto, os.Stdout))
}

func TestDefaultStyles(t *testing.T) {
	cfg := DefaultStyles()
	styles := cfg.Build(lipgloss.NewRenderer(os.Stdout))

	for _, name := range []string{styleHeader, styleSuccess, styleError, styleWarning, styleMuted, styleFilePath, styleTag, styleDryRun} {
		_, ok := styles[name]
		assert.True(t, ok, name)
	}
}

func TestParseStyles_UndefinedColor(t *testing.T) {
	_, err := ParseStyles([]byte("styles:\n  Bad:\n    foreground: purple\n"))
	assert.Error(t, err)
}
