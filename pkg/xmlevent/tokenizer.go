package xmlevent

import (
	"bytes"
	"html"
	"io"

	"github.com/muktihari/xmltokenizer"
	"github.com/pkg/errors"
)

const (
	cdataOpen  = "<![CDATA["
	cdataClose = "]]>"
	xmlNS      = "http://www.w3.org/XML/1998/namespace"
	// maxToken bounds one tag plus its text, large coordinate blobs included.
	maxToken = 64 << 20
)

// tokenizerSource drives xmltokenizer. RawToken splits the stream into a
// tag plus the character data that follows it; each tag is then handed to
// a tokenizer of its own for the name and attributes. Self-closing tags and
// CDATA sections are recognised from the raw bytes, since Token flags any
// '/' inside a quoted value as self-closing and strips CDATA markers.
//
// Prefixes are resolved here against a stack of xmlns scopes.
type tokenizerSource struct {
	tok     *xmltokenizer.Tokenizer
	scopes  []map[string]string
	open    []string
	pending []Event
}

// NewTokenizerSource reads events with github.com/muktihari/xmltokenizer.
// The input must be UTF-8 and attribute values double quoted. Leading and
// trailing whitespace of character data is not preserved.
func NewTokenizerSource(r io.Reader) Source {
	return &tokenizerSource{tok: xmltokenizer.New(r, xmltokenizer.WithAutoGrowBufferMaxLimitSize(maxToken))}
}

func (s *tokenizerSource) Next() (Event, error) {
	for len(s.pending) == 0 {
		raw, err := s.tok.RawToken()
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Event{}, errors.Errorf("xml tokenize: unexpected EOF, %d open elements", len(s.open))
		}
		if err != nil && err != io.EOF {
			return Event{}, errors.Wrap(err, "xml tokenize")
		}
		if raw = bytes.TrimSpace(raw); len(raw) > 0 {
			if qerr := s.queue(raw); qerr != nil {
				return Event{}, qerr
			}
		}
		if err == io.EOF && len(s.pending) == 0 {
			if len(s.open) > 0 {
				return Event{}, errors.Errorf("xml tokenize: unexpected EOF, %d open elements", len(s.open))
			}
			return Event{}, io.EOF
		}
	}
	ev := s.pending[0]
	s.pending = s.pending[1:]
	return ev, nil
}

func (s *tokenizerSource) queue(raw []byte) error {
	switch {
	case bytes.HasPrefix(raw, []byte(cdataOpen)):
		s.queueText(raw)
		return nil
	case bytes.HasPrefix(raw, []byte("<?")), bytes.HasPrefix(raw, []byte("<!")):
		return nil
	case raw[0] != '<':
		s.queueText(raw)
		return nil
	}

	end := tagEnd(raw)
	if end < 0 {
		return errors.Errorf("xml tokenize: unterminated tag %.32q", raw)
	}
	head, text := raw[:end+1], raw[end+1:]
	selfClosing := end > 1 && raw[end-1] == '/'

	// Reset keeps stale bytes in the buffer, so each tag gets its own tokenizer.
	tt := xmltokenizer.New(bytes.NewReader(normalizeSpace(head)), xmltokenizer.WithReadBufferSize(len(head)))
	token, err := tt.Token()
	if err != nil && err != io.EOF {
		return errors.Wrapf(err, "xml tokenize: tag %.32q", head)
	}
	if len(token.Name.Local) == 0 {
		return errors.Errorf("xml tokenize: tag without a name %.32q", head)
	}
	prefix, local := string(token.Name.Prefix), string(token.Name.Local)

	if token.IsEndElement {
		full := string(token.Name.Full)
		if len(s.open) == 0 {
			return errors.Errorf("xml tokenize: unexpected end element </%s>", full)
		}
		if top := s.open[len(s.open)-1]; top != full {
			return errors.Errorf("xml tokenize: element <%s> closed by </%s>", top, full)
		}
		s.pending = append(s.pending, Event{Kind: EndElement, Space: s.resolve(prefix), Local: local})
		s.pop()
		s.queueText(text)
		return nil
	}

	scope := map[string]string{}
	for i := range token.Attrs {
		a := &token.Attrs[i]
		switch {
		case len(a.Name.Prefix) == 0 && string(a.Name.Local) == "xmlns":
			scope[""] = string(a.Value)
		case string(a.Name.Prefix) == "xmlns":
			scope[string(a.Name.Local)] = string(a.Value)
		}
	}
	s.scopes = append(s.scopes, scope)
	s.open = append(s.open, string(token.Name.Full))

	ev := Event{Kind: StartElement, Space: s.resolve(prefix), Local: local}
	for i := range token.Attrs {
		a := &token.Attrs[i]
		ap := string(a.Name.Prefix)
		if ap == "xmlns" || (ap == "" && string(a.Name.Local) == "xmlns") {
			continue
		}
		space := ""
		if ap != "" {
			space = s.resolve(ap)
		}
		ev.Attrs = append(ev.Attrs, Attr{Space: space, Local: string(a.Name.Local), Value: html.UnescapeString(string(a.Value))})
	}
	s.pending = append(s.pending, ev)

	if selfClosing {
		s.pending = append(s.pending, Event{Kind: EndElement, Space: ev.Space, Local: ev.Local})
		s.pop()
	}
	s.queueText(text)
	return nil
}

func (s *tokenizerSource) pop() {
	s.scopes = s.scopes[:len(s.scopes)-1]
	s.open = s.open[:len(s.open)-1]
}

// queueText turns the data following a tag into one CharData event.
// Entities are expanded outside CDATA sections only.
func (s *tokenizerSource) queueText(data []byte) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return
	}
	var sb bytes.Buffer
	for len(data) > 0 {
		i := bytes.Index(data, []byte(cdataOpen))
		if i < 0 {
			sb.WriteString(html.UnescapeString(string(data)))
			break
		}
		sb.WriteString(html.UnescapeString(string(data[:i])))
		data = data[i+len(cdataOpen):]
		j := bytes.Index(data, []byte(cdataClose))
		if j < 0 {
			sb.Write(data)
			break
		}
		sb.Write(data[:j])
		data = data[j+len(cdataClose):]
	}
	s.pending = append(s.pending, Event{Kind: CharData, Text: sb.String()})
}

func (s *tokenizerSource) resolve(prefix string) string {
	if prefix == "xml" {
		return xmlNS
	}
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if uri, ok := s.scopes[i][prefix]; ok {
			return uri
		}
	}
	if prefix != "" {
		// unbound prefixes are reported verbatim, as encoding/xml does
		return prefix
	}
	return ""
}

// tagEnd returns the index of the '>' closing the tag at the start of raw,
// skipping quoted attribute values.
func tagEnd(raw []byte) int {
	var quote byte
	for i, c := range raw {
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i
		}
	}
	return -1
}

// normalizeSpace maps tabs and line breaks inside a tag to spaces, which
// is what XML attribute normalization does and what xmltokenizer expects
// between a name and its attributes.
func normalizeSpace(tag []byte) []byte {
	out := make([]byte, len(tag))
	for i, c := range tag {
		switch c {
		case '\t', '\n', '\r':
			c = ' '
		}
		out[i] = c
	}
	return out
}
