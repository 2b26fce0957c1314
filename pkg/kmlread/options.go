package kmlread

import (
	"github.com/sirupsen/logrus"

	"kmlstream/pkg/kml"
	"kmlstream/pkg/xmlevent"
)

const DefaultMaxDepth = 10000

type Options struct {
	// Namespace is matched by substring against each element's namespace
	// URI; elements whose URI it does not contain are skipped. Elements
	// with no namespace at all are always read as KML, so documents that
	// omit the xmlns declaration still parse.
	Namespace string
	MaxDepth  int
	Logger    logrus.FieldLogger
	// CheckIDs records a warning for every id seen more than once.
	CheckIDs bool
	// Backend picks the event source used by ReadBytes and ReadFile.
	Backend xmlevent.Backend
}

func DefaultOptions() Options {
	return Options{
		Namespace: kml.Namespace,
		MaxDepth:  DefaultMaxDepth,
		Logger:    logrus.StandardLogger(),
		Backend:   xmlevent.BackendDecoder,
	}
}

// Result is the outcome of a read. Kml is nil only when no root element
// was found.
type Result struct {
	Kml *kml.Kml
	// Styles indexes every Style and StyleMap carrying an id, wherever it
	// appears in the tree. A later definition replaces an earlier one.
	Styles   map[string]kml.StyleSelector
	Warnings []Warning
}

// OK reports whether the document was read without any warning.
func (r *Result) OK() bool {
	return len(r.Warnings) == 0
}
