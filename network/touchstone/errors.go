package touchstone

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax reports malformed file content.
	ErrSyntax = errors.New("touchstone: syntax error")
	// ErrUnsupported reports valid content this package does not handle,
	// such as Y-parameters or more than two ports.
	ErrUnsupported = errors.New("touchstone: unsupported content")
)

// SyntaxError locates a parse failure. It matches ErrSyntax or
// ErrUnsupported via errors.Is.
type SyntaxError struct {
	Line int
	Msg  string
	Kind error
}

func (e *SyntaxError) Error() string {
	if e.Kind == ErrUnsupported {
		return fmt.Sprintf("touchstone: line %d: unsupported: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("touchstone: line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Is(target error) bool {
	return target == e.Kind
}

func syntaxErr(line int, format string, args ...any) error {
	return &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...), Kind: ErrSyntax}
}

func unsupportedErr(line int, format string, args ...any) error {
	return &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...), Kind: ErrUnsupported}
}
