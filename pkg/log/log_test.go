package log

import (
	contextPkg "FinanceTracker/pkg/context"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorWithTraceID(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	assert.Equal(t, "req-1", ErrorWithTraceID(Fields{RequestIDKey: "req-1"}, "boom"))

	generated := ErrorWithTraceID(nil, "boom")
	assert.Len(t, generated, 36)

	assert.NotEqual(t, "unknown", ErrorWithTraceID(Fields{RequestIDKey: "unknown"}, "boom"))
}

func TestWithRequestID(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	ctx := contextPkg.WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", WithRequestID(ctx).Data[RequestIDKey])
	assert.Equal(t, "unknown", WithRequestID(context.Background()).Data[RequestIDKey])
}
