package cryptor

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorConstructorsProduceMatchingPredicates(t *testing.T) {
	cases := []struct {
		name string
		err  error
		is   func(error) bool
	}{
		{"BadIVError", NewBadIVError(16, 15), IsBadIVError},
		{"BadBlockLengthError", NewBadBlockLengthError(16, 17), IsBadBlockLengthError},
		{"PaddingError", NewPaddingError(99, 16), IsPaddingError},
		{"BadNonceLengthError", NewBadNonceLengthError(12, 8), IsBadNonceLengthError},
		{"TagTooLongError", NewTagTooLongError(65, 64), IsTagTooLongError},
		{"TwoBitError", NewTwoBitError(6), IsTwoBitError},
		{"NoInverseError", NewNoInverseError(big.NewInt(6), big.NewInt(9)), IsNoInverseError},
		{"RSAInputTooShortError", NewRSAInputTooShortError(128, 1), IsRSAInputTooShortError},
		{"ValidationError", NewValidationError("key", 12, "must be 16, 24, or 32 bytes"), IsValidationError},
	}

	for _, c := range cases {
		a := assert.New(t)
		a.NotNil(c.err, "%s: constructor returned nil", c.name)
		a.NotEmpty(c.err.Error(), "%s: Error() returned empty string", c.name)
		a.True(c.is(c.err), "%s: predicate returned false for its own error", c.name)
	}
}

func TestErrorPredicatesRejectUnrelatedErrors(t *testing.T) {
	other := fmt.Errorf("some unrelated error")

	predicates := []struct {
		name string
		is   func(error) bool
	}{
		{"IsBadIVError", IsBadIVError},
		{"IsBadBlockLengthError", IsBadBlockLengthError},
		{"IsPaddingError", IsPaddingError},
		{"IsBadNonceLengthError", IsBadNonceLengthError},
		{"IsTagTooLongError", IsTagTooLongError},
		{"IsTwoBitError", IsTwoBitError},
		{"IsNoInverseError", IsNoInverseError},
		{"IsRSAInputTooShortError", IsRSAInputTooShortError},
		{"IsValidationError", IsValidationError},
	}

	for _, p := range predicates {
		assert.Falsef(t, p.is(other), "%s returned true for an unrelated error", p.name)
		assert.Falsef(t, p.is(nil), "%s returned true for a nil error", p.name)
	}
}

func TestErrorsUnwrapToNilByDefault(t *testing.T) {
	err := &BadIVError{Expected: 16, Got: 8}
	assert.Nil(t, err.Unwrap())
}
