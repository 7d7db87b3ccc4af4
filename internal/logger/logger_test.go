// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBufferedLogger builds a *Logger writing into buf so tests can inspect
// the emitted JSON.
func newBufferedLogger(buf *bytes.Buffer, role string) *Logger {
	l := zerolog.New(buf).With().Str("role", role).Logger()
	return &Logger{l}
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestLoggerRoleField(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferedLogger(&buf, "server")

	log.Info().Msg("starting up")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "starting up", entry["message"])
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := newBufferedLogger(&buf, "server")

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc-123")
	})

	child.Info().Msg("from child")
	entry := lastEntry(t, &buf)
	assert.Equal(t, "abc-123", entry["trace_id"])
	assert.Equal(t, "server", entry["role"])

	// parent stays untouched
	buf.Reset()
	parent.Info().Msg("from parent")
	entry = lastEntry(t, &buf)
	assert.NotContains(t, entry, "trace_id")
}

func TestFromContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferedLogger(&buf, "worker")

	ctx := log.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via context")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "worker", entry["role"])
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferedLogger(&buf, "http")

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req = req.WithContext(log.WithContext(req.Context()))

	FromRequest(req).Info().Msg("via request")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "http", entry["role"])
}

func TestNopDiscardsEverything(t *testing.T) {
	log := Nop()
	// must not panic and must be usable anywhere a *Logger is expected
	log.Info().Msg("dropped")
	log.Error().Msg("dropped too")
	assert.NotNil(t, log.GetChildLogger())
}
