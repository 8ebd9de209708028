// Package apperr defines the error taxonomy used across the application:
// which failures are fatal at start-up, which fall back to safe defaults,
// and which are recovered locally by the UI without mutating state.
package apperr

import "github.com/pkg/errors"

// PathError indicates a configuration or progress directory could not be
// located or created. Fatal: surfaced to the user at start-up.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return errors.Wrapf(e.Err, "cannot resolve path %q", e.Path).Error()
}

func (e *PathError) Unwrap() error { return e.Err }

// NewPathError wraps err as a PathError for the given path.
func NewPathError(path string, err error) error {
	return &PathError{Path: path, Err: err}
}

// ParseError indicates a YAML/JSON document failed to parse. Policy is
// source-dependent: a progress-file ParseError should fall back to empty
// progress (logged); a bible-structure ParseError is fatal.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return errors.Wrapf(e.Err, "cannot parse %s", e.Source).Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError wraps err as a ParseError for the given source description.
func NewParseError(source string, err error) error {
	return &ParseError{Source: source, Err: err}
}

// InputError indicates a malformed book name, out-of-range chapter or
// verse, or malformed range syntax typed by the user. Recovered locally:
// returned to the form widget as a displayable message with no state
// mutation.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

// NewInputError builds an InputError with a user-displayable message.
func NewInputError(format string, args ...any) error {
	return &InputError{Msg: errors.Errorf(format, args...).Error()}
}

// IoError indicates a filesystem read/write failure. Surfaced to the
// user, non-fatal unless it occurs during initial load.
type IoError struct {
	Op  string
	Err error
}

func (e *IoError) Error() string {
	return errors.Wrapf(e.Err, "%s", e.Op).Error()
}

func (e *IoError) Unwrap() error { return e.Err }

// NewIoError wraps err as an IoError describing the operation that failed.
func NewIoError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IoError{Op: op, Err: err}
}

// IsPath, IsParse, IsInput, and IsIo report whether err (or something it
// wraps) is of the corresponding kind.
func IsPath(err error) bool  { var e *PathError; return errors.As(err, &e) }
func IsParse(err error) bool { var e *ParseError; return errors.As(err, &e) }
func IsInput(err error) bool { var e *InputError; return errors.As(err, &e) }
func IsIo(err error) bool    { var e *IoError; return errors.As(err, &e) }
