package ctxdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromCtx(ctx))

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithTraceID(ctx, "trace-1")
	ctx = WithParticipantID(ctx, "3")

	assert.Equal(t, "req-1", GetRequestIDFromCtx(ctx))
	assert.Equal(t, "trace-1", GetTraceIDFromCtx(ctx))
	assert.Equal(t, "3", GetParticipantIDFromCtx(ctx))
}

func TestNilContext(t *testing.T) {
	assert.Empty(t, GetParticipantIDFromCtx(nil))
}
