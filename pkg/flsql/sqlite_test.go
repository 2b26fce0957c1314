package flsql

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"

	"kmlstream/pkg/kml"
	"kmlstream/pkg/kmlread"
)

const trackKML = `<kml xmlns="http://www.opengis.net/kml/2.2">
<Document>
  <name>trip</name>
  <Folder>
    <name>day1</name>
    <Placemark id="p1"><name>start</name><styleUrl>#s</styleUrl><Point><coordinates>1,2,3</coordinates></Point></Placemark>
    <Placemark><name>route</name><visibility>0</visibility><LineString><coordinates>1,2,3 4,5,6 7,8,9</coordinates></LineString></Placemark>
  </Folder>
  <Placemark><name>empty</name></Placemark>
  <Placemark><name>bad</name><Point><coordinates>1,x</coordinates></Point></Placemark>
</Document>
</kml>`

func TestWriteDocument(t *testing.T) {
	res, err := kmlread.New(kmlread.DefaultOptions()).ReadBytes([]byte(trackKML))
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)

	db, err := Open(filepath.Join(t.TempDir(), "out.db"))
	require.NoError(t, err)
	defer db.Close()

	id, err := db.WriteDocument("track.kml", res)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	pms, err := db.Placemarks(id)
	require.NoError(t, err)
	require.Len(t, pms, 4)

	assert.Equal(t, "p1", pms[0].ID)
	assert.Equal(t, "start", pms[0].Name)
	assert.Equal(t, "trip/day1", pms[0].Folder)
	assert.Equal(t, "#s", pms[0].StyleURL)
	assert.Equal(t, "Point", pms[0].Kind)
	assert.True(t, pms[0].Visible)

	g, err := wkb.Unmarshal(pms[0].Geom)
	require.NoError(t, err)
	require.IsType(t, &geom.Point{}, g)
	assert.Equal(t, []float64{1, 2, 3}, g.FlatCoords())

	assert.Equal(t, "LineString", pms[1].Kind)
	assert.False(t, pms[1].Visible)
	cs, err := db.Coordinates(id, 1)
	require.NoError(t, err)
	assert.Equal(t, kml.Coordinates{{Lon: 1, Lat: 2, Alt: 3}, {Lon: 4, Lat: 5, Alt: 6}, {Lon: 7, Lat: 8, Alt: 9}}, cs)

	assert.Equal(t, "trip", pms[2].Folder)
	assert.Empty(t, pms[2].Kind)
	assert.Nil(t, pms[2].Geom)

	var nwarn, nfeat int
	require.NoError(t, db.db.Get(&nwarn, `SELECT count(*) FROM warnings WHERE doc = ?`, id))
	assert.Equal(t, 1, nwarn)
	require.NoError(t, db.db.Get(&nfeat, `SELECT features FROM documents WHERE id = ?`, id))
	assert.Equal(t, 6, nfeat)

	id, err = db.WriteDocument("again", res)
	require.NoError(t, err)
	assert.Equal(t, 2, id)
}
