package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizedEmail(t *testing.T) {
	assert.Equal(t, "a****@*******.com", SanitizedEmail("amina@example.com"))
	assert.Equal(t, "[invalid-email]", SanitizedEmail("not-an-email"))
}

func TestRedactedAttr(t *testing.T) {
	attr := RedactedAttr("email", "amina@example.com", "production")
	assert.Equal(t, "[REDACTED]", attr.Value.String())

	attr = RedactedAttr("email", "amina@example.com", "development")
	assert.Equal(t, "amina@example.com", attr.Value.String())
}

func TestSanitizeQueryString(t *testing.T) {
	assert.True(t, SanitizeQueryString("token=abc123"))
	assert.True(t, SanitizeQueryString("redirect=/login&PASSWORD=x"))
	assert.False(t, SanitizeQueryString("level=200L"))
	assert.False(t, SanitizeQueryString(""))
}
