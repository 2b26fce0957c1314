package kmlread

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDepthExceeded aborts a read whose element nesting is deeper than
	// Options.MaxDepth.
	ErrDepthExceeded = errors.New("kmlread: element nesting too deep")
	// ErrNoRoot is recorded when the stream ends without a <kml> element.
	ErrNoRoot = errors.New("kmlread: no kml root element")
	// ErrDuplicateID is recorded per repeated id when Options.CheckIDs is set.
	ErrDuplicateID = errors.New("kmlread: duplicate id")
)

// ContractError reports misuse of the reader by its own callers, such as
// the shared link body invoked with a terminator it does not declare.
// It always aborts the read.
type ContractError struct {
	Element string
	Reason  string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("kmlread: contract violation in <%s>: %s", e.Element, e.Reason)
}

// StreamError wraps a failure of the underlying event source: malformed
// XML, an I/O error or a truncated document.
type StreamError struct {
	Element string
	Err     error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("kmlread: stream error in <%s>: %v", e.Element, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// Warning is a non fatal problem met while reading. The tree is still
// returned; the affected field keeps its default.
type Warning struct {
	Element string
	Err     error
}

func (w Warning) String() string {
	if w.Element == "" {
		return w.Err.Error()
	}
	return fmt.Sprintf("<%s>: %v", w.Element, w.Err)
}

func isFatal(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce) || errors.Is(err, ErrDepthExceeded)
}
