// Package flsql exports parsed documents to an SQLite database.
package flsql

import (
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom/encoding/wkb"
	_ "modernc.org/sqlite"

	"kmlstream/pkg/geo"
	"kmlstream/pkg/kml"
	"kmlstream/pkg/kmlread"
)

const SCHEMA = `CREATE TABLE IF NOT EXISTS documents (id integer NOT NULL PRIMARY KEY, name text, title text, features integer);
CREATE TABLE IF NOT EXISTS warnings (doc integer, seq integer, element text, errstr text);
CREATE TABLE IF NOT EXISTS placemarks (doc integer, idx integer, oid text, name text, folder text,
 style_url text, kind text, visible integer, geom blob);
CREATE TABLE IF NOT EXISTS coords (doc integer, pm integer, seq integer,
 lon double precision, lat double precision, alt double precision)`

const IDOC = `insert into documents (id, name, title, features) values (:id, :name, :title, :features)`
const IWARN = `insert into warnings (doc, seq, element, errstr) values (:doc, :seq, :element, :errstr)`
const IPM = `insert into placemarks (doc, idx, oid, name, folder, style_url, kind, visible, geom)
 values (:doc, :idx, :oid, :name, :folder, :style_url, :kind, :visible, :geom)`
const ICOORD = `insert into coords (doc, pm, seq, lon, lat, alt) values (:doc, :pm, :seq, :lon, :lat, :alt)`

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

type Placemark struct {
	Doc      int    `db:"doc"`
	Idx      int    `db:"idx"`
	ID       string `db:"oid"`
	Name     string `db:"name"`
	Folder   string `db:"folder"`
	StyleURL string `db:"style_url"`
	Kind     string `db:"kind"`
	Visible  bool   `db:"visible"`
	Geom     []byte `db:"geom"`
}

type coord struct {
	Doc int     `db:"doc"`
	Pm  int     `db:"pm"`
	Seq int     `db:"seq"`
	Lon float64 `db:"lon"`
	Lat float64 `db:"lat"`
	Alt float64 `db:"alt"`
}

type warning struct {
	Doc     int    `db:"doc"`
	Seq     int    `db:"seq"`
	Element string `db:"element"`
	Errstr  string `db:"errstr"`
}

type DB struct {
	db   *sqlx.DB
	next int
}

// Open creates a fresh database at fn, replacing any existing file.
func Open(fn string) (*DB, error) {
	os.Remove(fn)
	db, err := sqlx.Open("sqlite", fn)
	if err != nil {
		return nil, errors.Wrap(err, "db")
	}
	if _, err = db.Exec(SCHEMA); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "tables")
	}
	return &DB{db: db, next: 1}, nil
}

// WriteDocument stores every placemark of res, its coordinates and the
// parse warnings under a new document id, which it returns.
func (d *DB) WriteDocument(name string, res *kmlread.Result) (int, error) {
	id := d.next
	tx, err := d.db.Beginx()
	if err != nil {
		return 0, errors.Wrap(err, "begin")
	}
	w := &docWriter{tx: tx, doc: id}
	if err := w.write(name, res); err != nil {
		tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "commit")
	}
	d.next++
	return id, nil
}

type docWriter struct {
	tx    *sqlx.Tx
	doc   int
	count int
	pms   int
}

func (w *docWriter) write(name string, res *kmlread.Result) error {
	for i, wn := range res.Warnings {
		if _, err := w.tx.NamedExec(IWARN, warning{Doc: w.doc, Seq: i, Element: wn.Element, Errstr: wn.Err.Error()}); err != nil {
			return errors.Wrap(err, "warnings")
		}
	}
	var title string
	if res.Kml != nil && res.Kml.Feature != nil {
		title = res.Kml.Feature.Common().Name
		if err := w.feature(res.Kml.Feature, nil); err != nil {
			return err
		}
	}
	_, err := w.tx.NamedExec(IDOC, map[string]any{"id": w.doc, "name": name, "title": title, "features": w.count})
	return errors.Wrap(err, "documents")
}

func (w *docWriter) feature(f kml.Feature, path []string) error {
	w.count++
	fd := f.Common()
	switch v := f.(type) {
	case *kml.Placemark:
		return w.placemark(v, strings.Join(path, "/"))
	case *kml.Folder, *kml.Document:
		path = append(path, fd.Name)
		for _, c := range kml.Children(v) {
			if err := w.feature(c, path); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *docWriter) placemark(pm *kml.Placemark, folder string) error {
	row := Placemark{
		Doc:      w.doc,
		Idx:      w.pms,
		ID:       pm.ID,
		Name:     pm.Name,
		Folder:   folder,
		StyleURL: pm.StyleURL,
		Visible:  pm.Visibility,
	}
	w.pms++
	var cs kml.Coordinates
	if pm.Geometry != nil {
		row.Kind = kindName(pm.Geometry)
		cs = kml.GeometryCoordinates(pm.Geometry)
		if t, err := geo.FromKML(pm.Geometry); err == nil {
			if row.Geom, err = wkb.Marshal(t, wkb.NDR); err != nil {
				return errors.Wrapf(err, "wkb %s", pm.Name)
			}
		}
	}
	if _, err := w.tx.NamedExec(IPM, row); err != nil {
		return errors.Wrap(err, "placemarks")
	}
	for i, c := range cs {
		if _, err := w.tx.NamedExec(ICOORD, coord{Doc: w.doc, Pm: row.Idx, Seq: i, Lon: c.Lon, Lat: c.Lat, Alt: c.Alt}); err != nil {
			return errors.Wrap(err, "coords")
		}
	}
	return nil
}

func kindName(g kml.Geometry) string {
	switch g.(type) {
	case *kml.Point:
		return "Point"
	case *kml.LineString:
		return "LineString"
	case *kml.LinearRing:
		return "LinearRing"
	case *kml.Polygon:
		return "Polygon"
	case *kml.MultiGeometry:
		return "MultiGeometry"
	case *kml.Model:
		return "Model"
	}
	return ""
}

// Placemarks returns the stored placemarks of document doc in order.
func (d *DB) Placemarks(doc int) ([]Placemark, error) {
	var pms []Placemark
	err := d.db.Select(&pms, `SELECT * FROM placemarks WHERE doc = ? ORDER BY idx`, doc)
	return pms, errors.Wrap(err, "placemarks")
}

// Coordinates returns the stored coordinates of placemark idx of doc.
func (d *DB) Coordinates(doc, idx int) (kml.Coordinates, error) {
	var rows []coord
	if err := d.db.Select(&rows, `SELECT * FROM coords WHERE doc = ? AND pm = ? ORDER BY seq`, doc, idx); err != nil {
		return nil, errors.Wrap(err, "coords")
	}
	cs := make(kml.Coordinates, len(rows))
	for i, r := range rows {
		cs[i] = kml.Coordinate{Lon: r.Lon, Lat: r.Lat, Alt: r.Alt}
	}
	return cs, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}
