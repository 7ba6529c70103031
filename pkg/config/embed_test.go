// pkg/config/embed_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Embedded defaults
// PURPOSE: Test that the embedded defaults load through the bytes provider

package config

import (
	"testing"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawBytesProviderLoadsWithParser(t *testing.T) {
	provider := &rawBytesProvider{bytes: defaultConfig}

	raw, err := provider.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, DefaultContent(), string(raw))

	k := koanf.New(".")
	require.NoError(t, k.Load(provider, toml.Parser()))
	assert.Equal(t, FormatAuto, k.String("output.format"))

	_, err = provider.Read()
	assert.Error(t, err)
}
