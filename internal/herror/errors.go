// Package herror defines the single typed error the core surfaces to
// callers, shared by every internal package so a caller never has to match
// on container-specific error types.
package herror

import "fmt"

// Kind classifies why a decode, encode, or extraction failed.
type Kind int

const (
	// KindNotHWPFile means the file header signature did not match.
	KindNotHWPFile Kind = iota
	// KindUnsupportedVersion means the document is password-encrypted, or
	// otherwise declares a variant this core refuses to read.
	KindUnsupportedVersion
	// KindInvalidFormat means a structural invariant was violated: zero
	// sections, a truncated record, malformed XML, an unknown file
	// extension, or retrieval text below the minimum length.
	KindInvalidFormat
	// KindParseError means a recognized structure's contents are
	// inconsistent, e.g. a distribution record shorter than 260 bytes.
	KindParseError
	// KindIOError wraps an underlying file-system, ZIP, or CFB library
	// failure.
	KindIOError
	// KindStreamNotFound means a required container stream is absent.
	KindStreamNotFound
	// KindCryptoError means distribution-key derivation or AES decryption
	// failed.
	KindCryptoError
)

func (k Kind) String() string {
	switch k {
	case KindNotHWPFile:
		return "not-an-HWP-file"
	case KindUnsupportedVersion:
		return "unsupported-version"
	case KindInvalidFormat:
		return "invalid-format"
	case KindParseError:
		return "parse-error"
	case KindIOError:
		return "io-error"
	case KindStreamNotFound:
		return "stream-not-found"
	case KindCryptoError:
		return "crypto-error"
	default:
		return "unknown-error"
	}
}

// Error is the one typed error the core returns. Callers that care about the
// failure category switch on Kind; everyone else just calls Error().
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error that chains an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Wrapf builds an Error with a formatted message, chaining an underlying cause.
func Wrapf(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// Of reports whether err is itself an *Error of the given kind. It checks
// err directly and does not unwrap a chain of wrapped errors.
func Of(err error, kind Kind) bool {
	var e *Error
	if as, ok := err.(*Error); ok {
		e = as
	} else {
		return false
	}
	return e.Kind == kind
}
