package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscription_PositionBurstLeavesRoomForState(t *testing.T) {
	sub := newSubscription()

	for i := range 2 * eventBufferSize {
		sub.send(PositionChange{Position: time.Duration(i) * time.Second})
	}
	sub.send(StateChange{Previous: Playing, Current: Paused})
	sub.send(DurationChange{Duration: time.Minute})

	events := drain(sub)
	require.Len(t, events, eventBufferSize-positionHeadroom+2)
	assert.Equal(t, PositionChange{Position: 0}, events[0])
	assert.Equal(t, StateChange{Previous: Playing, Current: Paused}, events[len(events)-2])
	assert.Equal(t, DurationChange{Duration: time.Minute}, events[len(events)-1])
}

func TestSubscription_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	for range eventBufferSize + 5 {
		sub.send(StateChange{Previous: Paused, Current: Playing})
	}

	assert.Len(t, drain(sub), eventBufferSize)
}
