// Package shellerr defines the error kinds surfaced by the parser,
// validator, and argument parser, in the style of
// opal-lang/opal/cli/errors.go's CLIError: a typed Kind plus an optional
// positional Context the diagnostic renderer can point a caret at.
package shellerr

import "fmt"

// Kind tags the category of a shell front-end failure.
type Kind int

const (
	// Validator kinds (spec.md §7).
	InvalidCommand Kind = iota
	UnclosedQuote
	UnclosedBracket
	CorruptedToken
	CorruptedTokenAttribute
	UnsupportedOperation
	EmptySubstitution
	EmptyString
	EmptyParam

	// Argument-parsing kinds.
	NoParameter
)

func (k Kind) String() string {
	switch k {
	case InvalidCommand:
		return "invalid command"
	case UnclosedQuote:
		return "unclosed quote"
	case UnclosedBracket:
		return "unclosed bracket"
	case CorruptedToken:
		return "corrupted token"
	case CorruptedTokenAttribute:
		return "corrupted token attribute"
	case UnsupportedOperation:
		return "unsupported operation"
	case EmptySubstitution:
		return "empty substitution"
	case EmptyString:
		return "empty string"
	case EmptyParam:
		return "empty parameter"
	case NoParameter:
		return "no parameter"
	default:
		return "unknown error"
	}
}

// Context locates an Error within a piece of source text, for the
// diagnostic renderer (spec.md §4.9).
type Context struct {
	Source string // "stdin", "argv", or a file path
	Raw    string // the top-level raw input
	Offset int    // byte offset into Raw
	Length int    // underline length; renderer clamps to max(1, Length)
}

// Error is the error type returned by validation and argument parsing.
type Error struct {
	Kind    Kind
	Message string
	Context *Context // nil when there is no positional information
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New builds an Error with no positional context.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At builds an Error with positional context for the diagnostic renderer.
func At(kind Kind, ctx Context, format string, args ...any) *Error {
	c := ctx
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Context: &c}
}

// Is supports errors.Is comparisons against a bare Kind sentinel wrapped
// in an Error{Kind: k}.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
