package cfgloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfigMasksTaggedFields(t *testing.T) {
	type nested struct {
		Token string `yaml:"token" mask:"true"`
		Host  string `yaml:"host"`
	}
	type cfg struct {
		User     string  `yaml:"user"`
		Password string  `yaml:"password" mask:"true"`
		Port     int     `yaml:"port"     mask:"true"`
		DB       nested  `yaml:"db"`
		Missing  *nested `yaml:"missing"`
	}

	out, err := renderConfig(cfg{
		User:     "admin",
		Password: "secret",
		Port:     5432,
		DB:       nested{Token: "abcd", Host: "localhost"},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "user: admin")
	assert.Contains(t, out, "******")
	assert.Contains(t, out, "port: 0")
	assert.NotContains(t, out, "abcd")
	assert.Contains(t, out, "host: localhost")
	assert.NotContains(t, out, "secret")
}
