// Package puzzleerr defines the error taxonomy shared across preparation,
// encoding, and solving: malformed input, internal encoder bugs, and
// unsupported rules are all distinguishable with errors.As so that callers
// can decide what is fatal and what is a meaningful outcome.
package puzzleerr

import "fmt"

// MalformedPuzzleError reports a Grid/Rule combination that preparation
// cannot make sense of, e.g. a DartNumbers rule on a cell without a color
// clue, or an off-by-one area clue of 0.
type MalformedPuzzleError struct {
	Reason string
}

func (e *MalformedPuzzleError) Error() string {
	return fmt.Sprintf("malformed puzzle: %s", e.Reason)
}

// EncodingFailureError reports an internal consistency check failing inside
// the constraint encoder or rule expansion, e.g. a rule of a type the
// switch does not know.
type EncodingFailureError struct {
	Reason string
}

func (e *EncodingFailureError) Error() string {
	return fmt.Sprintf("encoding failure: %s", e.Reason)
}

// UnsupportedRuleError reports a declarative Rule the encoder has no
// encoding for, such as RegionsHaveDifferentShapes.
type UnsupportedRuleError struct {
	Rule string
}

func (e *UnsupportedRuleError) Error() string {
	return fmt.Sprintf("unsupported rule: %s", e.Rule)
}
