package xmlevent

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

type decoderSource struct {
	dec *xml.Decoder
}

// NewDecoderSource reads events with encoding/xml. Documents declaring a
// non UTF-8 encoding are transcoded on the fly.
func NewDecoderSource(r io.Reader) Source {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return &decoderSource{dec: dec}
}

func (s *decoderSource) Next() (Event, error) {
	for {
		tok, err := s.dec.Token()
		if err == io.EOF {
			return Event{}, io.EOF
		}
		if err != nil {
			return Event{}, errors.Wrapf(err, "xml decode at offset %d", s.dec.InputOffset())
		}
		switch t := tok.(type) {
		case xml.StartElement:
			ev := Event{Kind: StartElement, Space: t.Name.Space, Local: t.Name.Local}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				ev.Attrs = append(ev.Attrs, Attr{Space: a.Name.Space, Local: a.Name.Local, Value: a.Value})
			}
			return ev, nil
		case xml.EndElement:
			return Event{Kind: EndElement, Space: t.Name.Space, Local: t.Name.Local}, nil
		case xml.CharData:
			return Event{Kind: CharData, Text: string(t)}, nil
		}
	}
}
