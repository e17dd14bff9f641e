package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlinkAlternatesStartingOn(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	br := &stubBridge{}
	br.onSet = func(calls int) {
		if calls >= 4 {
			cancel()
		}
	}

	err := runBlink(ctx, br, "7", time.Millisecond)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(br.setCalls), 4)
	for i, call := range br.setCalls {
		assert.Equal(t, "7", call.id)
		assert.Equal(t, i%2 == 0, call.on, "toggle %d", i)
	}
}

func TestBlinkStopsWhenAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	br := &stubBridge{}
	err := runBlink(ctx, br, "1", time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, br.setCalls)
}

func TestBlinkPropagatesBridgeError(t *testing.T) {
	br := &stubBridge{failSet: "1"}

	err := runBlink(context.Background(), br, "1", time.Millisecond)
	require.ErrorIs(t, err, errFailSet)
}
