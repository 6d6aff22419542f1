package conjugator

import (
	"errors"
	"fmt"
)

// NoSuchForm is returned by Conjugate for a form that does not exist:
// a missing principal part or a missing ending. It is a value, not an
// error, so a whole chart can be built with gaps.
const NoSuchForm = "-"

// Absent marks a principal part that the lexical service reports as
// nonexistent.
const Absent = "-"

var (
	// ErrInvalidTag is wrapped by *InvalidTagError.
	ErrInvalidTag = errors.New("invalid morphology tag")
	// ErrUnrecognizedMorphology is wrapped by *UnrecognizedMorphologyError.
	ErrUnrecognizedMorphology = errors.New("unrecognized morphology")
	// ErrNotAVerb is wrapped by *NotAVerbError.
	ErrNotAVerb = errors.New("cannot conjugate non-verbs")
	// ErrInvalidCode reports a code outside the code alphabet.
	ErrInvalidCode = errors.New("invalid morphological code")
	// ErrMalformedRecord reports a lemma record whose fields cannot be split.
	ErrMalformedRecord = errors.New("malformed lemma record")
)

// InvalidTagError reports an external tag that does not match the
// field grammar.
type InvalidTagError struct {
	Tag string
}

// Error implements error.
func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("invalid morphology tag %q", e.Tag)
}

// Unwrap returns ErrInvalidTag so errors.Is matches the sentinel.
func (e *InvalidTagError) Unwrap() error { return ErrInvalidTag }

// UnrecognizedMorphologyError reports a lemma record whose summary tag is
// not a first-person present active or deponent verb tag.
type UnrecognizedMorphologyError struct {
	Morpho string
}

// Error implements error.
func (e *UnrecognizedMorphologyError) Error() string {
	return fmt.Sprintf("unrecognized morphology %q", e.Morpho)
}

// Unwrap returns ErrUnrecognizedMorphology so errors.Is matches the sentinel.
func (e *UnrecognizedMorphologyError) Unwrap() error { return ErrUnrecognizedMorphology }

// NotAVerbError reports a code whose class digit is not the verb digit.
type NotAVerbError struct {
	Code Code
}

// Error implements error.
func (e *NotAVerbError) Error() string {
	return fmt.Sprintf("cannot conjugate non-verb code %s", e.Code)
}

// Unwrap returns ErrNotAVerb so errors.Is matches the sentinel.
func (e *NotAVerbError) Unwrap() error { return ErrNotAVerb }
