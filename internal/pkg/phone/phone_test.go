//go:build unit

package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/pkg/phone"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain digits pass through", "01234567890", "01234567890"},
		{"leading plus is stripped", "+201234567890", "201234567890"},
		{"separators are removed", "012-345 678.90", "01234567890"},
		{"letters are removed", "0123456789O", "0123456789"},
		{"interior plus is dropped", "0123+4567890", "01234567890"},
		{"empty input", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, phone.Normalize(c.input))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, "01234567890", phone.Clamp("012345678901234"))
	assert.Equal(t, "0123456", phone.Clamp("0123456"))
	assert.Equal(t, "01234567890", phone.Clamp("0 1 2 3 4 5 6 7 8 9 0 9 9"))
}

func TestIsValid(t *testing.T) {
	assert.True(t, phone.IsValid("01234567890"))
	assert.True(t, phone.IsValid("012-345-678-90"))
	assert.False(t, phone.IsValid("0123456789"))
	assert.False(t, phone.IsValid("012345678901"))
	assert.False(t, phone.IsValid(""))
	// "+" plus 11 digits still validates because the prefix is stripped.
	assert.True(t, phone.IsValid("+01234567890"))
}
