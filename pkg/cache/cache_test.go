package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The degraded paths matter most here: an unconfigured cache must behave
// like an always-empty one, never like a failure.

func TestDegradedCache_ReadsMiss(t *testing.T) {
	c := NewService(nil)
	ctx := context.Background()

	var dest map[string]string
	assert.ErrorIs(t, c.Get(ctx, "some-key", &dest), ErrMiss)
	assert.ErrorIs(t, c.GetInterpretation(ctx, "abc123", &dest), ErrMiss)
}

func TestDegradedCache_WritesAreDropped(t *testing.T) {
	c := NewService(nil)
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", map[string]string{"a": "b"}, TTLDefault))
	assert.NoError(t, c.SetInterpretation(ctx, "abc123", map[string]string{"a": "b"}))

	deleted, err := c.Delete(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, deleted)

	exists, err := c.Exists(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestDegradedCache_Availability(t *testing.T) {
	c := NewService(nil)

	assert.False(t, c.IsAvailable())
	assert.Error(t, c.Ping(context.Background()))
}
