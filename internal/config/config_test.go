package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/sampler"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("intgraph", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("input-dir", "images", "")
	fs.StringP("output", "o", "images/plot.png", "")
	fs.Int("column", 7, "")
	fs.Int("rows", 440, "")
	fs.Float64("x-scale", 0.265, "")
	fs.String("flat", "error", "")
	fs.Bool("debug", false, "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, &Config{
		InputDir: "images",
		Output:   "images/plot.png",
		Column:   7,
		Rows:     440,
		XScale:   0.265,
		Flat:     "error",
	}, cfg)

	opts := cfg.Options()
	assert.Equal(t, 7, opts.SampleColumn())
	assert.Equal(t, 440, opts.SampleRows())
	assert.Equal(t, sampler.FlatError, opts.FlatPolicy())
	assert.Equal(t, filepath.Join("images", "fringes.png"), cfg.InputPath("fringes.png"))
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "intgraph.yaml")
	require.NoError(t, os.WriteFile(file, []byte("rows: 100\ncolumn: 2\nflat: midpoint\noutput: from-file.png\n"), 0644))

	t.Setenv("INTGRAPH_ROWS", "200")

	v := New()
	fs := testFlags()
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"--config", file, "--output", "flag.png"}))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Column, "file beats default")
	assert.Equal(t, 200, cfg.Rows, "env beats file")
	assert.Equal(t, "flag.png", cfg.Output, "flag beats file")
	assert.Equal(t, "midpoint", cfg.Flat)
	assert.Equal(t, sampler.FlatMidpoint, cfg.Options().FlatPolicy())
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		args []string
	}{
		{[]string{"--column", "-1"}},
		{[]string{"--rows", "0"}},
		{[]string{"--x-scale", "0"}},
		{[]string{"--output", " "}},
		{[]string{"--flat", "nan"}},
	}

	for _, tt := range tests {
		v := New()
		fs := testFlags()
		require.NoError(t, BindFlags(v, fs))
		require.NoError(t, fs.Parse(tt.args))
		_, err := Load(v)
		assert.Error(t, err, "%v", tt.args)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	v := New()
	v.Set("config", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load(v)
	assert.Error(t, err)
}
