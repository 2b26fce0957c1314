package kmlwrite

import (
	"archive/zip"
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmlstream/pkg/kml"
	"kmlstream/pkg/kmlread"
	"kmlstream/pkg/kmz"
	"kmlstream/pkg/xmlevent"
)

func readFixture(t *testing.T, fn string) *kml.Kml {
	t.Helper()
	res, err := kmlread.New(kmlread.DefaultOptions()).ReadFile(fn)
	require.NoError(t, err)
	require.True(t, res.OK(), "%v", res.Warnings)
	return res.Kml
}

func roundTrip(t *testing.T, k *kml.Kml, indent bool) *kml.Kml {
	t.Helper()
	var buf bytes.Buffer
	if indent {
		require.NoError(t, WriteIndent(&buf, k, "", "  "))
	} else {
		require.NoError(t, Write(&buf, k))
	}
	res, err := kmlread.New(kmlread.DefaultOptions()).ReadBytes(buf.Bytes())
	require.NoError(t, err)
	require.True(t, res.OK(), "%v\n%s", res.Warnings, buf.String())
	return res.Kml
}

func TestRoundTrip(t *testing.T) {
	for _, fn := range []string{"testdata/survey.kml", "testdata/update.kml"} {
		t.Run(fn, func(t *testing.T) {
			want := readFixture(t, fn)
			for _, indent := range []bool{false, true} {
				got := roundTrip(t, want, indent)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("round trip mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestRoundTripConstructedTree(t *testing.T) {
	pm := kml.NewPlacemark()
	pm.ID = "p"
	pm.Visibility = false
	pm.Description = "  spaced <b>text</b> & more  "
	ls := kml.NewLineString()
	ls.AltitudeMode = kml.AltitudeModeAbsolute
	ls.Coordinates = kml.Coordinates{{Lon: -0.1, Lat: 51.5, Alt: 12.25}, {Lon: 1e-7, Lat: -89.999999, Alt: 0}}
	pm.Geometry = ls
	st := &kml.Style{IdAttributes: kml.IdAttributes{ID: "s"}, LineStyle: kml.NewLineStyle()}
	st.LineStyle.Color = kml.Color{R: 1, G: 2, B: 3, A: 4}
	st.LineStyle.ColorMode = kml.ColorModeRandom
	pm.StyleSelectors = []kml.StyleSelector{st}
	pm.TimePrimitive = &kml.TimeSpan{Begin: mustDate(t, "1999")}
	pm.ExtendedData = &kml.ExtendedData{Data: []*kml.Data{{Name: "k", Value: ""}}}
	doc := kml.NewDocument()
	doc.Open = true
	doc.Features = []kml.Feature{pm, kml.NewFolder()}
	want := &kml.Kml{Feature: doc}

	got := roundTrip(t, want, true)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func mustDate(t *testing.T, s string) kml.DateTime {
	t.Helper()
	d, err := kml.ParseDateTime(s)
	require.NoError(t, err)
	return d
}

func TestDefaultsAreOmitted(t *testing.T) {
	pm := kml.NewPlacemark()
	pm.Geometry = kml.NewPoint()
	pm.StyleSelectors = []kml.StyleSelector{&kml.Style{LineStyle: kml.NewLineStyle(), PolyStyle: kml.NewPolyStyle()}}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &kml.Kml{Feature: pm}))
	out := buf.String()
	for _, tag := range []string{"<visibility>", "<open>", "<altitudeMode>", "<width>", "<color>", "<fill>", "<extrude>"} {
		assert.NotContains(t, out, tag)
	}
	assert.Contains(t, out, `<kml xmlns="http://www.opengis.net/kml/2.2">`)
}

func TestLeafEncoding(t *testing.T) {
	pm := kml.NewPlacemark()
	pm.Visibility = false
	ls := kml.NewLineStyle()
	ls.Color = kml.Color{R: 0xaa, G: 0x20, B: 0x80, A: 0xff}
	pm.StyleSelectors = []kml.StyleSelector{&kml.Style{LineStyle: ls}}
	pt := kml.NewPoint()
	pt.Extrude = true
	pt.Coordinates = kml.Coordinates{{Lon: 1, Lat: 2, Alt: 3}}
	pm.Geometry = pt

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &kml.Kml{Feature: pm}))
	out := buf.String()
	assert.Contains(t, out, "<visibility>0</visibility>")
	assert.Contains(t, out, "<color>ff8020aa</color>")
	assert.Contains(t, out, "<extrude>1</extrude>")
	assert.Contains(t, out, "<coordinates>1,2,3</coordinates>")
}

func TestWriteKMZ(t *testing.T) {
	want := readFixture(t, "testdata/survey.kml")
	var buf bytes.Buffer
	require.NoError(t, WriteKMZ(&buf, want))
	assert.Equal(t, kmz.IS_KMZ, kmz.Sniff(buf.Bytes()))

	res, err := kmlread.New(kmlread.DefaultOptions()).ReadBytes(buf.Bytes())
	require.NoError(t, err)
	require.True(t, res.OK(), "%v", res.Warnings)
	if diff := cmp.Diff(want, res.Kml); diff != "" {
		t.Errorf("kmz round trip mismatch (-want +got):\n%s", diff)
	}
}

// topLevel lists the local names of the children of the root element.
func topLevel(t *testing.T, doc []byte) []string {
	t.Helper()
	evs, err := xmlevent.Collect(xmlevent.NewDecoderSource(bytes.NewReader(doc)))
	require.NoError(t, err)
	var names []string
	depth := 0
	for _, ev := range evs {
		switch ev.Kind {
		case xmlevent.StartElement:
			depth++
			if depth == 2 {
				names = append(names, ev.Local)
			}
		case xmlevent.EndElement:
			depth--
		}
	}
	return names
}

func TestWriteKMZDocIsUnwrapped(t *testing.T) {
	want := readFixture(t, "testdata/survey.kml")
	var buf bytes.Buffer
	require.NoError(t, WriteKMZ(&buf, want, File{Name: "files/pin.png", Data: []byte{0x89, 'P', 'N', 'G'}}))

	doc, err := kmz.Extract(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, []string{"Document"}, topLevel(t, doc))
	assert.True(t, strings.HasPrefix(string(doc), "<?xml"))

	var plain bytes.Buffer
	require.NoError(t, WriteIndent(&plain, want, "", "  "))
	assert.Equal(t, plain.String(), string(doc))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "doc.kml", zr.File[0].Name)
	assert.Equal(t, "files/pin.png", zr.File[1].Name)
}

func TestWriteKMZNetworkLinkControl(t *testing.T) {
	want := readFixture(t, "testdata/update.kml")
	require.NotNil(t, want.NetworkLinkControl)
	var buf bytes.Buffer
	require.NoError(t, WriteKMZ(&buf, want))

	res, err := kmlread.New(kmlread.DefaultOptions()).ReadBytes(buf.Bytes())
	require.NoError(t, err)
	require.True(t, res.OK(), "%v", res.Warnings)
	if diff := cmp.Diff(want, res.Kml); diff != "" {
		t.Errorf("kmz round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteKMZRejects(t *testing.T) {
	assert.ErrorIs(t, WriteKMZ(&bytes.Buffer{}, &kml.Kml{}), ErrNoFeature)
	k := &kml.Kml{Feature: kml.NewFolder()}
	assert.Error(t, WriteKMZ(&bytes.Buffer{}, k, File{Name: "doc.kml"}))
}

func TestRegionLod(t *testing.T) {
	lod := kml.NewLod()
	lod.MinLodPixels = 256
	lod.MaxFadeExtent = 32
	pm := kml.NewPlacemark()
	pm.Region = &kml.Region{IdAttributes: kml.IdAttributes{ID: "r"}, Lod: lod}
	want := &kml.Kml{Feature: pm}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, want))
	assert.Contains(t, buf.String(), "<Lod><minLodPixels>256</minLodPixels><maxFadeExtent>32</maxFadeExtent></Lod>")

	got := roundTrip(t, want, false)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFixtureMentionsEveryFeatureKind(t *testing.T) {
	dat, err := os.ReadFile("testdata/survey.kml")
	require.NoError(t, err)
	for _, tag := range []string{"Placemark", "Folder", "Document", "NetworkLink", "GroundOverlay", "ScreenOverlay", "PhotoOverlay"} {
		assert.True(t, strings.Contains(string(dat), "<"+tag), tag)
	}
}
