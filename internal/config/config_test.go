package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segpath/astar"
	"github.com/katalvlaran/segpath/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 100000, cfg.MaxEdges)
	assert.EqualValues(t, 8<<20, cfg.MaxBodyBytes)
	assert.Equal(t, astar.RelaxBestCost, cfg.Policy())
	assert.False(t, cfg.Snap)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse([]byte(`
addr: "127.0.0.1:9090"
allowed_origins: ["*"]
relax_policy: frontier-scan
snap: true
read_timeout: 2s
`))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, astar.RelaxFrontierScan, cfg.Policy())
	assert.True(t, cfg.Snap)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	// untouched keys keep their defaults
	assert.Equal(t, config.DefaultMaxEdges, cfg.MaxEdges)
	assert.Equal(t, config.DefaultWriteTimeout, cfg.WriteTimeout)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"EmptyAddr":     `addr: ""`,
		"NegativeEdges": `max_edges: -1`,
		"NegativeBody":  `max_body_bytes: -5`,
		"UnknownPolicy": `relax_policy: greedy`,
		"BlankOrigin":   `allowed_origins: [" "]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Parse([]byte("addr: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "segpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_edges: 10\n"), 0o600))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MaxEdges)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
