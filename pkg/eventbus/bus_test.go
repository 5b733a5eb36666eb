package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := New()
	first := bus.Subscribe(1)
	second := bus.Subscribe(1)

	bus.Publish()

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}

func TestPublishDoesNotBlockOnFullSubscriber(t *testing.T) {
	bus := New()
	slow := bus.Subscribe(1)
	fast := bus.Subscribe(2)

	// Второе уведомление в переполненный канал молча теряется
	bus.Publish()
	bus.Publish()

	assert.Len(t, slow, 1)
	assert.Len(t, fast, 2)
}

func TestSubscribeMinimumBuffer(t *testing.T) {
	bus := New()
	ch := bus.Subscribe(0)

	bus.Publish()

	require.Len(t, ch, 1)
	<-ch
	select {
	case <-ch:
		t.Fatal("channel should be empty")
	default:
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	bus := New()
	assert.NotPanics(t, func() { bus.Publish() })
}
