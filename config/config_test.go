package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nj-go/njoin/nj"
	"github.com/stretchr/testify/require"
)

func TestParseDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg, err := parse(DefaultConfigYAML)
	require.NoError(t, err)
	require.Equal(t, "canonical", cfg.Strategy)
	require.Equal(t, 1, cfg.Threads)
	require.Equal(t, 1, cfg.ChunkSize)
}

func TestParseMinimalConfig_KeepsDefaultsForUnsetFields(t *testing.T) {
	t.Parallel()
	data := []byte(`
strategy: hybrid
canonical_iters: 5
`)
	cfg, err := parse(data)
	require.NoError(t, err)
	require.Equal(t, "hybrid", cfg.Strategy)
	require.Equal(t, 5, cfg.CanonicalIters)
	require.Equal(t, 1, cfg.Threads)
	require.Equal(t, 1, cfg.ChunkSize)
}

func TestLoad_ReadsFileFromDisk(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: pruned\nthreads: 4\nchunk_size: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "pruned", cfg.Strategy)
	require.Equal(t, 4, cfg.Threads)
}

func TestResolveConfigPath_ExplicitMissing(t *testing.T) {
	t.Parallel()
	_, err := ResolveConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestToOptions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  Config
		want nj.Strategy
	}{
		{"canonical", Config{Strategy: "canonical", Threads: 1, ChunkSize: 1}, nj.StrategyCanonical},
		{"empty defaults to canonical", Config{Threads: 1, ChunkSize: 1}, nj.StrategyCanonical},
		{"pruned", Config{Strategy: "pruned", Threads: 2, ChunkSize: 2}, nj.StrategyPruned},
		{"hybrid", Config{Strategy: "hybrid", Threads: 2, ChunkSize: 2, CanonicalIters: 4}, nj.StrategyHybrid},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			opts, err := c.cfg.ToOptions()
			require.NoError(t, err)
			require.Equal(t, c.want, opts.Strategy)
		})
	}
}

func TestToOptions_UnknownStrategy(t *testing.T) {
	t.Parallel()
	_, err := (&Config{Strategy: "quantum"}).ToOptions()

	var nerr *nj.Error
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, nj.ConfigInvalid, nerr.Kind)
}
