package cfgm_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/cfgm"
	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/subst"
)

type logConfig struct {
	Level string `json:"level"`
}

type testConfig struct {
	Files   []string      `json:"files"`
	Depth   int           `json:"max-depth"`
	Strict  bool          `json:"strict"`
	Timeout time.Duration `json:"timeout"`
	Log     logConfig     `json:"log"`
}

func defaults() testConfig {
	return testConfig{
		Files:   []string{".env"},
		Timeout: time.Second,
		Log:     logConfig{Level: "info"},
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := cfgm.Load(defaults(), cfgm.WithConfigPaths(filepath.Join(t.TempDir(), "absent.yaml")))
	require.NoError(t, err)
	assert.Equal(t, defaults(), *cfg)
}

func TestLoad_Files(t *testing.T) {
	t.Setenv("CFGM_TEST_ENV", "production")

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "yaml",
			file:    "config.yaml",
			content: "files: [.env, .env.${CFGM_TEST_ENV}]\nmax-depth: 8\ntimeout: 5s\nlog:\n  level: debug\n",
		},
		{
			name:    "json",
			file:    "config.json",
			content: `{"files": [".env", ".env.${CFGM_TEST_ENV}"], "max-depth": 8, "timeout": "5s", "log": {"level": "debug"}}`,
		},
		{
			name:    "toml",
			file:    "config.toml",
			content: "files = ['.env', '.env.${CFGM_TEST_ENV}']\nmax-depth = 8\ntimeout = '5s'\n\n[log]\nlevel = 'debug'\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)

			cfg, err := cfgm.Load(defaults(), cfgm.WithConfigPaths(path))
			require.NoError(t, err)
			assert.Equal(t, []string{".env", ".env.production"}, cfg.Files)
			assert.Equal(t, 8, cfg.Depth)
			assert.Equal(t, 5*time.Second, cfg.Timeout)
			assert.Equal(t, "debug", cfg.Log.Level)
		})
	}
}

func TestLoad_FirstFileWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("max-depth: 2\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.yaml"), []byte("max-depth: 3\n"), 0o600))

	cfg, err := cfgm.Load(defaults(),
		cfgm.WithBaseDir(dir),
		cfgm.WithConfigPaths("a.yaml", "b.yaml", "c.yaml"),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Depth)
}

func TestLoad_Expansion(t *testing.T) {
	path := writeConfig(t, "config.yaml", "log:\n  level: ${CFGM_TEST_UNSET:?level required}\n")

	_, err := cfgm.Load(defaults(), cfgm.WithConfigPaths(path))
	require.ErrorIs(t, err, subst.ErrRequired)

	cfg, err := cfgm.Load(defaults(), cfgm.WithConfigPaths(path), cfgm.WithoutExpansion())
	require.NoError(t, err)
	assert.Equal(t, "${CFGM_TEST_UNSET:?level required}", cfg.Log.Level)
}

func TestLoad_EnvPrefix(t *testing.T) {
	t.Setenv("CFGM_TEST_FILES", "a.env,b.env")
	t.Setenv("CFGM_TEST_MAX_DEPTH", "4")
	t.Setenv("CFGM_TEST_LOG_LEVEL", "warn")

	cfg, err := cfgm.Load(defaults(),
		cfgm.WithConfigPaths(filepath.Join(t.TempDir(), "absent.yaml")),
		cfgm.WithEnvPrefix("CFGM_TEST_"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.env", "b.env"}, cfg.Files)
	assert.Equal(t, 4, cfg.Depth)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadCmd_FlagsOverride(t *testing.T) {
	t.Setenv("CFGM_TEST_LOG_LEVEL", "warn")
	path := writeConfig(t, "config.yaml", "max-depth: 8\nstrict: false\n")

	var got *testConfig
	cmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "files", Aliases: []string{"f"}},
			&cli.IntFlag{Name: "max-depth"},
			&cli.BoolFlag{Name: "strict"},
			&cli.StringFlag{Name: "log-level"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			var err error
			got, err = cfgm.LoadCmd(cmd, defaults(), "",
				cfgm.WithConfigPaths(path),
				cfgm.WithEnvPrefix("CFGM_TEST_"),
			)
			return err
		},
	}

	err := cmd.Run(context.Background(), []string{"test", "-f", "x.env", "-f", "y.env", "--strict", "--log-level", "error"})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, []string{"x.env", "y.env"}, got.Files)
	assert.Equal(t, 8, got.Depth, "unset flag keeps file value")
	assert.True(t, got.Strict)
	assert.Equal(t, "error", got.Log.Level, "flag beats env")
}

func TestDefaultPaths(t *testing.T) {
	assert.Equal(t, []string{"config.yaml", "config/config.yaml"}, cfgm.DefaultPaths())

	paths := cfgm.DefaultPaths("dotenv")
	require.NotEmpty(t, paths)
	assert.Equal(t, ".dotenv.yaml", paths[0])
	assert.Equal(t, "/etc/dotenv/config.yaml", paths[len(paths)-1])
}

func TestMustLoad(t *testing.T) {
	path := writeConfig(t, "config.yaml", "max-depth: [not, an, int]\n")

	assert.Panics(t, func() {
		cfgm.MustLoad(defaults(), cfgm.WithConfigPaths(path))
	})
}
