package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure so callers can pick a fallback
// without string-matching on the detail text.
type Kind string

const (
	KindParse        Kind = "parse"
	KindNotFound     Kind = "not_found"
	KindFormat       Kind = "format"
	KindExternalTool Kind = "external_tool"
	KindDevice       Kind = "device"
	KindInternal     Kind = "internal"
)

type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func Parse(format string, args ...any) *Error {
	return &Error{Kind: KindParse, Detail: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Detail: fmt.Sprintf(format, args...)}
}

func Format(format string, args ...any) *Error {
	return &Error{Kind: KindFormat, Detail: fmt.Sprintf(format, args...)}
}

func ExternalTool(format string, args ...any) *Error {
	return &Error{Kind: KindExternalTool, Detail: fmt.Sprintf(format, args...)}
}

func Device(format string, args ...any) *Error {
	return &Error{Kind: KindDevice, Detail: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind carried by err, or KindInternal for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
