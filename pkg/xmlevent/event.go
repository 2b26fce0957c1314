// Package xmlevent adapts XML tokenizers to a small pull-event stream of
// start elements, end elements and character data with namespaces already
// resolved to URIs.
package xmlevent

import "io"

type Kind int

const (
	StartElement Kind = iota
	EndElement
	CharData
)

func (k Kind) String() string {
	switch k {
	case StartElement:
		return "start"
	case EndElement:
		return "end"
	case CharData:
		return "chardata"
	}
	return "unknown"
}

type Attr struct {
	Space string
	Local string
	Value string
}

// Event is one pull event. Space and Local are set on element events, Text
// on character data.
type Event struct {
	Kind  Kind
	Space string
	Local string
	Attrs []Attr
	Text  string
}

// Attr returns the value of the first attribute named local, ignoring its
// namespace.
func (e Event) Attr(local string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// AttrNS is Attr restricted to one namespace URI.
func (e Event) AttrNS(space, local string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Space == space && a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// Source yields events in document order. Next returns io.EOF once the
// input is exhausted.
type Source interface {
	Next() (Event, error)
}

// Backend selects a Source implementation.
type Backend string

const (
	BackendDecoder   Backend = "decoder"
	BackendTokenizer Backend = "tokenizer"
)

// New returns a Source over r using the named backend. Unknown names fall
// back to the encoding/xml decoder.
func New(r io.Reader, b Backend) Source {
	if b == BackendTokenizer {
		return NewTokenizerSource(r)
	}
	return NewDecoderSource(r)
}

// Collect drains src into a slice. io.EOF is not reported.
func Collect(src Source) ([]Event, error) {
	var evs []Event
	for {
		ev, err := src.Next()
		if err == io.EOF {
			return evs, nil
		}
		if err != nil {
			return evs, err
		}
		evs = append(evs, ev)
	}
}
