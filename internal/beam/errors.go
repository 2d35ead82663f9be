package beam

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBeamModel is wrapped by every error that rejects a beam before
// any computation starts
var ErrInvalidBeamModel = errors.New("invalid beam model")

// ModelError locates a violated model invariant
type ModelError struct {
	Span int    // span index, -1 when not span specific
	Node int    // joint index, -1 when not joint specific
	Load string // load label, empty when not load specific
	Msg  string
}

func (e *ModelError) Error() string {
	var where []string
	if e.Span >= 0 {
		where = append(where, fmt.Sprintf("span %d", e.Span+1))
	}
	if e.Node >= 0 {
		where = append(where, fmt.Sprintf("joint %d", e.Node+1))
	}
	if e.Load != "" {
		where = append(where, "load "+e.Load)
	}
	if len(where) == 0 {
		return ErrInvalidBeamModel.Error() + ": " + e.Msg
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidBeamModel, strings.Join(where, ", "), e.Msg)
}

func (e *ModelError) Unwrap() error {
	return ErrInvalidBeamModel
}

func modelErr(format string, args ...any) *ModelError {
	return &ModelError{Span: -1, Node: -1, Msg: fmt.Sprintf(format, args...)}
}

func spanErr(span int, format string, args ...any) *ModelError {
	return &ModelError{Span: span, Node: -1, Msg: fmt.Sprintf(format, args...)}
}

func nodeErr(node int, format string, args ...any) *ModelError {
	return &ModelError{Span: -1, Node: node, Msg: fmt.Sprintf(format, args...)}
}

func loadErr(span int, load string, format string, args ...any) *ModelError {
	return &ModelError{Span: span, Node: -1, Load: load, Msg: fmt.Sprintf(format, args...)}
}
