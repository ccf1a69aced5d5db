package redact_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/medkb/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"nothing sensitive", "record not found: \"epilepsy\"", "record not found: \"epilepsy\""},
		{
			"unix path",
			"open /srv/medkb/content/neuro.yaml: permission denied",
			"open [REDACTED_PATH]: permission denied",
		},
		{
			"windows path",
			`open C:\content\neuro\epilepsy.yaml failed`,
			"open [REDACTED_PATH] failed",
		},
		{"email", "reported by editor@example.org", "reported by [REDACTED_EMAIL]"},
		{
			"stack trace",
			"panic: boom\n\tgoroutine 1 [running]:\n\t/app/main.go:12",
			"[STACK_TRACE_REDACTED]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, redact.String(tc.input))
		})
	}
}

func TestError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, redact.Error(nil))
	assert.Equal(t, "read [REDACTED_PATH]", redact.Error(errors.New("read /var/lib/medkb")))
}
