// Package kmlwrite serializes a kml.Kml tree with github.com/twpayne/go-kml.
//
// Only fields that differ from their schema default are written, so
// reading the output back with kmlread yields an equal tree.
package kmlwrite

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	gokml "github.com/twpayne/go-kml"

	"kmlstream/pkg/kml"
)

// ErrNoFeature is returned by WriteKMZ for a document holding neither a
// feature nor a NetworkLinkControl.
var ErrNoFeature = errors.New("kmlwrite: document has no feature")

// Element builds the go-kml element tree for k.
func Element(k *kml.Kml) *gokml.CompoundElement {
	root := &gokml.CompoundElement{
		StartElement: xml.StartElement{Name: xml.Name{Space: kml.Namespace, Local: "kml"}},
	}
	if k.Hint != "" {
		root.Attr = append(root.Attr, xml.Attr{Name: xml.Name{Local: "hint"}, Value: k.Hint})
	}
	if k.NetworkLinkControl != nil {
		root.Add(networkLinkControl(k.NetworkLinkControl))
	}
	if k.Feature != nil {
		root.Add(Feature(k.Feature))
	}
	return root
}

func Write(w io.Writer, k *kml.Kml) error {
	return Element(k).Write(w)
}

func WriteIndent(w io.Writer, k *kml.Kml, prefix, indent string) error {
	return Element(k).WriteIndent(w, prefix, indent)
}

// WriteKMZ writes k as a KMZ archive whose doc.kml is exactly what
// WriteIndent produces. Extra files, such as icons referenced by relative
// href, are stored after doc.kml in name order.
func WriteKMZ(w io.Writer, k *kml.Kml, files ...File) error {
	if k.Feature == nil && k.NetworkLinkControl == nil {
		return ErrNoFeature
	}
	zw := zip.NewWriter(w)
	dw, err := zw.Create(kmzDoc)
	if err != nil {
		return errors.Wrap(err, "kmz")
	}
	if err := WriteIndent(dw, k, "", "  "); err != nil {
		return errors.Wrap(err, "kmz: doc.kml")
	}
	files = append([]File(nil), files...)
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	for _, f := range files {
		if f.Name == kmzDoc {
			return errors.Errorf("kmz: %s is reserved", kmzDoc)
		}
		fw, err := zw.Create(f.Name)
		if err != nil {
			return errors.Wrapf(err, "kmz: %s", f.Name)
		}
		if _, err := fw.Write(f.Data); err != nil {
			return errors.Wrapf(err, "kmz: %s", f.Name)
		}
	}
	return errors.Wrap(zw.Close(), "kmz")
}

const kmzDoc = "doc.kml"

// File is a resource stored next to doc.kml in a KMZ archive.
type File struct {
	Name string
	Data []byte
}

func simple(name, value string) *gokml.SimpleElement {
	se := &gokml.SimpleElement{StartElement: xml.StartElement{Name: xml.Name{Local: name}}}
	se.SetString(value)
	return se
}

func compound(name string, children ...gokml.Element) *gokml.CompoundElement {
	ce := &gokml.CompoundElement{StartElement: xml.StartElement{Name: xml.Name{Local: name}}}
	return ce.Add(children...)
}

func atom(name string, children ...gokml.Element) *gokml.CompoundElement {
	ce := compound(name, children...)
	ce.Name.Space = kml.AtomNamespace
	return ce
}

func atomSimple(name, value string) *gokml.SimpleElement {
	se := simple(name, value)
	se.Name.Space = kml.AtomNamespace
	return se
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// withIDs sets the id and targetId attributes of ce.
func withIDs(ce *gokml.CompoundElement, a kml.IdAttributes) *gokml.CompoundElement {
	if a.ID != "" {
		ce.Attr = append(ce.Attr, attr("id", a.ID))
	}
	if a.TargetID != "" {
		ce.Attr = append(ce.Attr, attr("targetId", a.TargetID))
	}
	return ce
}

// elems accumulates optional children.
type elems []gokml.Element

func (es *elems) add(e ...gokml.Element) {
	*es = append(*es, e...)
}

func (es *elems) str(name, v string) {
	if v != "" {
		es.add(simple(name, v))
	}
}

func (es *elems) float(name string, v, def float64) {
	if v != def {
		es.add(simple(name, kml.FormatFloat(v)))
	}
}

func (es *elems) integer(name string, v, def int) {
	if v != def {
		es.add(simple(name, strconv.Itoa(v)))
	}
}

func (es *elems) boolean(name string, v, def bool) {
	if v != def {
		es.add(simple(name, kml.FormatBool(v)))
	}
}

func (es *elems) date(name string, d kml.DateTime) {
	if !d.IsZero() {
		es.add(simple(name, d.String()))
	}
}

func (es *elems) altitudeMode(v kml.AltitudeMode) {
	if v != kml.DefaultAltitudeMode && v != "" {
		es.add(gokml.AltitudeMode(gokml.AltitudeModeEnum(v)))
	}
}

func (es *elems) coordinates(cs kml.Coordinates) {
	if len(cs) > 0 {
		es.add(simple("coordinates", cs.String()))
	}
}

func vec2(name string, v *kml.Vec2) *gokml.SimpleElement {
	se := simple(name, "")
	se.Attr = []xml.Attr{
		attr("x", kml.FormatFloat(v.X)),
		attr("y", kml.FormatFloat(v.Y)),
		attr("xunits", string(v.XUnits)),
		attr("yunits", string(v.YUnits)),
	}
	return se
}

func snippet(name string, s *kml.Snippet) *gokml.SimpleElement {
	se := simple(name, s.Text)
	if s.MaxLines != kml.DefaultMaxSnippetLines {
		se.Attr = append(se.Attr, attr("maxLines", strconv.Itoa(s.MaxLines)))
	}
	return se
}
