package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// A nil client must behave like a permanent cache miss so the service layer
// can run without Redis at all.
func TestNilClientIsSafe(t *testing.T) {
	ctx := context.Background()
	var c *Client

	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))

	var dest []string
	assert.False(t, c.GetJSON(ctx, "k", &dest))
	c.SetJSON(ctx, "k", []string{"v"}, time.Minute)
}

func TestZeroValueClientIsSafe(t *testing.T) {
	ctx := context.Background()
	c := &Client{}

	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)

	var dest map[string]string
	assert.False(t, c.GetJSON(ctx, "k", &dest))
}
