package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrors_UnwrapToSentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"UnexpectedTerm", &UnexpectedTerm{Expected: "Usize", Actual: "Atom"}, ErrUnexpectedTerm},
		{"UnknownOpcode", &UnknownOpcode{Opcode: 200}, ErrUnknownOpcode},
		{"TooLargeUsizeValue", &TooLargeUsizeValue{ByteSize: 12}, ErrTooLargeUsizeValue},
		{"UnknownTermTag", &UnknownTermTag{Tag: 0xFF}, ErrUnknownTermTag},
		{"UnknownAllocationListItemTag", &UnknownAllocationListItemTag{Tag: 9}, ErrUnknownAllocationListItemTag},
		{"InvalidUnicodeCodepoint", &InvalidUnicodeCodepoint{Value: 0xD800}, ErrInvalidUnicodeCodepoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, errors.Is(tc.err, tc.want))
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}
