package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var received []Event
	d.Subscribe(EventStrikeIssued, func(ctx context.Context, event Event) error {
		received = append(received, event)
		return nil
	})
	d.Subscribe(EventStrikeIssued, func(ctx context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "e1", Type: EventStrikeIssued})
	require.NoError(t, err)
	assert.Len(t, received, 2)
}

func TestDispatcherIgnoresOtherTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventStrikeIssued, func(ctx context.Context, event Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventStrikeRevoked}))
	assert.False(t, called)
}

func TestDispatcherHandlerErrorDoesNotAbort(t *testing.T) {
	d := NewInMemoryDispatcher()

	var order []string
	d.Subscribe(EventTimeAdjusted, func(ctx context.Context, event Event) error {
		order = append(order, "first")
		return errors.New("boom")
	})
	d.Subscribe(EventTimeAdjusted, func(ctx context.Context, event Event) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTimeAdjusted}))
	assert.Equal(t, []string{"first", "second"}, order)
}
