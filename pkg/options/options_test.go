package options

import (
	"flag"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("kmlcat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseDefaults(t *testing.T) {
	c, files, err := Parse(newFlagSet(), "", []string{"a.kml", "b.kmz"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.kml", "b.kmz"}, files)
	assert.Equal(t, Config{}, c)
}

func TestParseEnvThenFlags(t *testing.T) {
	env := "  -dms -gradient rdylgn   -outdir /tmp/out -max-depth 50 "
	c, files, err := Parse(newFlagSet(), env, []string{"-gradient", "red", "-tokenizer", "x.kml"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x.kml"}, files)
	assert.True(t, c.Dms)
	assert.True(t, c.Tokenizer)
	assert.Equal(t, "red", c.Gradient)
	assert.Equal(t, "/tmp/out", c.Outdir)
	assert.Equal(t, 50, c.MaxDepth)
}

func TestParseExplicitOutputDropsEnvOutdir(t *testing.T) {
	c, _, err := Parse(newFlagSet(), "-outdir /tmp/out", []string{"-o", "out.kml", "x.kml"})
	require.NoError(t, err)
	assert.Empty(t, c.Outdir)
	assert.Equal(t, "out.kml", c.Output)
}

func TestParseErrors(t *testing.T) {
	_, _, err := Parse(newFlagSet(), "-nosuchflag", nil)
	assert.Error(t, err)

	_, _, err = Parse(newFlagSet(), "", []string{"-max-depth", "-1"})
	assert.Error(t, err)
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		inp  string
		idx  int
		want string
	}{
		{"stdout", Config{Output: "-"}, "a.kml", 3, "-"},
		{"explicit", Config{Output: "out/result.kml"}, "a.kml", 0, "out/result.kml"},
		{"explicit indexed", Config{Output: "out/result.kml"}, "a.kml", 2, filepath.Join("out", "result.2.kml")},
		{"outdir", Config{Outdir: "gen"}, "/data/track.kml", 0, filepath.Join("gen", "track.kmz")},
		{"outdir indexed", Config{Outdir: "gen"}, "/data/track.kml", 1, filepath.Join("gen", "track.1.kmz")},
		{"bare", Config{}, "/data/.kml", 0, ".kml.kmz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.OutputName(tt.inp, tt.idx))
		})
	}
}
