package xmlevent

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2" xmlns:atom="http://www.w3.org/2005/Atom">
<Document id="d1"><atom:author><atom:name>Ann &amp; Bob</atom:name></atom:author><name><![CDATA[<b>bold</b>]]></name><open/></Document>
</kml>`

// elements drops whitespace-only character data so the backends can be
// compared on structure.
func elements(t *testing.T, src Source) []Event {
	t.Helper()
	evs, err := Collect(src)
	require.NoError(t, err)
	var out []Event
	for _, ev := range evs {
		if ev.Kind == CharData && strings.TrimSpace(ev.Text) == "" {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func TestDecoderSource(t *testing.T) {
	const kmlNS = "http://www.opengis.net/kml/2.2"
	const atomNS = "http://www.w3.org/2005/Atom"
	want := []Event{
		{Kind: StartElement, Space: kmlNS, Local: "kml"},
		{Kind: StartElement, Space: kmlNS, Local: "Document", Attrs: []Attr{{Local: "id", Value: "d1"}}},
		{Kind: StartElement, Space: atomNS, Local: "author"},
		{Kind: StartElement, Space: atomNS, Local: "name"},
		{Kind: CharData, Text: "Ann & Bob"},
		{Kind: EndElement, Space: atomNS, Local: "name"},
		{Kind: EndElement, Space: atomNS, Local: "author"},
		{Kind: StartElement, Space: kmlNS, Local: "name"},
		{Kind: CharData, Text: "<b>bold</b>"},
		{Kind: EndElement, Space: kmlNS, Local: "name"},
		{Kind: StartElement, Space: kmlNS, Local: "open"},
		{Kind: EndElement, Space: kmlNS, Local: "open"},
		{Kind: EndElement, Space: kmlNS, Local: "Document"},
		{Kind: EndElement, Space: kmlNS, Local: "kml"},
	}
	got := elements(t, NewDecoderSource(strings.NewReader(sample)))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoder events mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizerMatchesDecoder(t *testing.T) {
	want := elements(t, New(strings.NewReader(sample), BackendDecoder))
	got := elements(t, New(strings.NewReader(sample), BackendTokenizer))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokenizer events mismatch (-decoder +tokenizer):\n%s", diff)
	}
}

func TestDecoderSourceCharset(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><name>Z\xfcrich</name>"
	got := elements(t, NewDecoderSource(strings.NewReader(doc)))
	require.Len(t, got, 3)
	assert.Equal(t, "Zürich", got[1].Text)
}

func TestDecoderSourceSyntaxError(t *testing.T) {
	evs, err := Collect(NewDecoderSource(strings.NewReader("<kml><Document></kml>")))
	require.Error(t, err)
	assert.Len(t, evs, 2)
}

func TestEventAttr(t *testing.T) {
	ev := Event{Attrs: []Attr{{Local: "id", Value: "a"}, {Space: "urn:x", Local: "id", Value: "b"}}}
	v, ok := ev.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	v, ok = ev.AttrNS("urn:x", "id")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	_, ok = ev.Attr("targetId")
	assert.False(t, ok)
}

func TestTokenizerSource(t *testing.T) {
	const kmlNS = "http://www.opengis.net/kml/2.2"
	tests := []struct {
		name string
		doc  string
		want []Event
	}{
		{
			name: "root with namespace url stays open",
			doc:  `<kml xmlns="http://www.opengis.net/kml/2.2"><Placemark><name>A</name><Point><coordinates>1,2</coordinates></Point></Placemark></kml>`,
			want: []Event{
				{Kind: StartElement, Space: kmlNS, Local: "kml"},
				{Kind: StartElement, Space: kmlNS, Local: "Placemark"},
				{Kind: StartElement, Space: kmlNS, Local: "name"},
				{Kind: CharData, Text: "A"},
				{Kind: EndElement, Space: kmlNS, Local: "name"},
				{Kind: StartElement, Space: kmlNS, Local: "Point"},
				{Kind: StartElement, Space: kmlNS, Local: "coordinates"},
				{Kind: CharData, Text: "1,2"},
				{Kind: EndElement, Space: kmlNS, Local: "coordinates"},
				{Kind: EndElement, Space: kmlNS, Local: "Point"},
				{Kind: EndElement, Space: kmlNS, Local: "Placemark"},
				{Kind: EndElement, Space: kmlNS, Local: "kml"},
			},
		},
		{
			name: "cdata keeps entities literal",
			doc:  `<kml xmlns="http://www.opengis.net/kml/2.2"><description>a &lt; b <![CDATA[<p>x &amp; y</p>]]></description></kml>`,
			want: []Event{
				{Kind: StartElement, Space: kmlNS, Local: "kml"},
				{Kind: StartElement, Space: kmlNS, Local: "description"},
				{Kind: CharData, Text: "a < b <p>x &amp; y</p>"},
				{Kind: EndElement, Space: kmlNS, Local: "description"},
				{Kind: EndElement, Space: kmlNS, Local: "kml"},
			},
		},
		{
			name: "self-closing tag with slash in value",
			doc: `<kml
	xmlns="http://www.opengis.net/kml/2.2"><Document><atom:link xmlns:atom="http://www.w3.org/2005/Atom" href="https://example.org/a/b"/><open>1</open></Document></kml>`,
			want: []Event{
				{Kind: StartElement, Space: kmlNS, Local: "kml"},
				{Kind: StartElement, Space: kmlNS, Local: "Document"},
				{Kind: StartElement, Space: "http://www.w3.org/2005/Atom", Local: "link", Attrs: []Attr{{Local: "href", Value: "https://example.org/a/b"}}},
				{Kind: EndElement, Space: "http://www.w3.org/2005/Atom", Local: "link"},
				{Kind: StartElement, Space: kmlNS, Local: "open"},
				{Kind: CharData, Text: "1"},
				{Kind: EndElement, Space: kmlNS, Local: "open"},
				{Kind: EndElement, Space: kmlNS, Local: "Document"},
				{Kind: EndElement, Space: kmlNS, Local: "kml"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := elements(t, NewTokenizerSource(strings.NewReader(tt.doc)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizerSourceSyntaxError(t *testing.T) {
	evs, err := Collect(NewTokenizerSource(strings.NewReader("<kml><Document></kml>")))
	require.Error(t, err)
	assert.Len(t, evs, 2)

	evs, err = Collect(NewTokenizerSource(strings.NewReader("<kml><Document>")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 open elements")
	assert.Len(t, evs, 2)
}
