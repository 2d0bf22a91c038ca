package obs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev, flags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prev)
		log.SetFlags(flags)
	})
	return &buf
}

func TestTime(t *testing.T) {
	buf := captureLog(t)
	ctx := WithRequestID(context.Background(), "req-9")

	var err error
	Time(ctx, "planner.GenerateRoutes")(&err)
	err = errors.New("boom")
	Time(ctx, "csv.ListPlaces")(&err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if assert.Len(t, lines, 2) {
		assert.Contains(t, lines[0], "req_id=req-9 op=planner.GenerateRoutes dur=")
		assert.NotContains(t, lines[0], "err=")
		assert.Contains(t, lines[1], "op=csv.ListPlaces")
		assert.Contains(t, lines[1], "err=boom")
	}
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
	assert.Equal(t, "abc", RequestID(WithRequestID(context.Background(), "abc")))
}
