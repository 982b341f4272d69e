package cfgloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/solid/cfgloader"
)

type testConfig struct {
	Name     string   `yaml:"name"     validate:"required"`
	Port     int      `yaml:"port"     default:"8080"`
	Sink     string   `yaml:"sink"     validate:"oneof=file database" default:"database"`
	Commands []string `yaml:"commands"`
	Password string   `yaml:"password" mask:"true"`
}

func writeConfig(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoad(t *testing.T) {
	t.Setenv("ENVIRONMENT", cfgloader.EnvTest)
	t.Setenv("SOLID_PASSWORD", "hunter2")

	dir := writeConfig(t, cfgloader.EnvTest, `
name: solid
commands: [redo, undo]
password: ${SOLID_PASSWORD}
`)

	cfg, err := cfgloader.Load[testConfig](cfgloader.WithConfigDir(dir), cfgloader.WithSilent())
	require.NoError(t, err)

	assert.Equal(t, "solid", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "database", cfg.Sink)
	assert.Equal(t, []string{"redo", "undo"}, cfg.Commands)
	assert.Equal(t, "hunter2", cfg.Password)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		content  string
		noFile   bool
		wantCode string
	}{
		{name: "missing environment", env: "", content: "name: x", wantCode: cfgloader.CodeInvalidEnvironment},
		{name: "unknown environment", env: "qa", content: "name: x", wantCode: cfgloader.CodeInvalidEnvironment},
		{name: "missing file", env: cfgloader.EnvLocal, noFile: true, wantCode: cfgloader.CodeConfigNotFound},
		{name: "broken yaml", env: cfgloader.EnvDev, content: "name: [x", wantCode: cfgloader.CodeConfigUnreadable},
		{name: "required field", env: cfgloader.EnvDev, content: "port: 1", wantCode: cfgloader.CodeInvalidConfig},
		{name: "oneof field", env: cfgloader.EnvDev, content: "name: x\nsink: syslog", wantCode: cfgloader.CodeInvalidConfig},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", tc.env)

			dir := t.TempDir()
			if !tc.noFile {
				dir = writeConfig(t, tc.env, tc.content)
			}

			_, err := cfgloader.Load[testConfig](cfgloader.WithConfigDir(dir), cfgloader.WithSilent())
			require.Error(t, err)
			assert.True(t, errx.IsCodeIn(err, tc.wantCode), "got %v", err)
		})
	}
}

func TestLoadRejectsPointerTarget(t *testing.T) {
	_, err := cfgloader.Load[*testConfig](cfgloader.WithSilent())
	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, cfgloader.CodeInvalidConfigTarget))
}
