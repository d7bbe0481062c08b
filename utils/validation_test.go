package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("guest@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.co"))
	assert.True(t, ValidateEmail("  padded@example.com  "))

	assert.False(t, ValidateEmail(""))
	assert.False(t, ValidateEmail("no-at-sign.example.com"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail("spaces in@example.com"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+12125551234"))
	assert.True(t, ValidatePhone("(212) 555-1234"))
	assert.True(t, ValidatePhone("212 555 1234"))

	assert.False(t, ValidatePhone(""))
	assert.False(t, ValidatePhone("abc"))
	assert.False(t, ValidatePhone("0123456"))
}
