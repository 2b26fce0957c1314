package kmz

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundle(t *testing.T, entries ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i := 0; i < len(entries); i += 2 {
		w, err := zw.Create(entries[i])
		require.NoError(t, err)
		_, err = w.Write([]byte(entries[i+1]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractPrefersDocKML(t *testing.T) {
	dat := bundle(t, "files/a.kml", "<kml>a</kml>", "images/x.png", "png", "doc.kml", "<kml>doc</kml>")
	got, err := Extract(bytes.NewReader(dat), int64(len(dat)))
	require.NoError(t, err)
	assert.Equal(t, "<kml>doc</kml>", string(got))
}

func TestExtractFirstKML(t *testing.T) {
	dat := bundle(t, "x.png", "png", "first.KML", "<kml>1</kml>", "second.kml", "<kml>2</kml>")
	got, err := Extract(bytes.NewReader(dat), int64(len(dat)))
	require.NoError(t, err)
	assert.Equal(t, "<kml>1</kml>", string(got))
}

func TestExtractNoKML(t *testing.T) {
	dat := bundle(t, "x.png", "png")
	_, err := Extract(bytes.NewReader(dat), int64(len(dat)))
	assert.ErrorIs(t, err, ErrNoKML)
}

func TestSniff(t *testing.T) {
	assert.Equal(t, IS_KMZ, Sniff(bundle(t, "doc.kml", "<kml/>")))
	assert.Equal(t, IS_KML, Sniff([]byte(`<?xml version="1.0"?><kml xmlns="http://www.opengis.net/kml/2.2"/>`)))
	assert.Equal(t, IS_KML, Sniff([]byte("\xef\xbb\xbf<?xml version=\"1.0\"?>\n")))
	assert.Equal(t, IS_UNKNOWN, Sniff([]byte("H Product:Blackbox")))
}

func TestOpenAndSniffFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "t.kmz")
	require.NoError(t, os.WriteFile(fn, bundle(t, "doc.kml", "<kml/>"), 0o644))
	ft, err := SniffFile(fn)
	require.NoError(t, err)
	assert.Equal(t, IS_KMZ, ft)
	dat, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, "<kml/>", string(dat))
}
