package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T) (EventHandler, func(n int) []DomainEvent) {
	t.Helper()
	var mu sync.Mutex
	var got []DomainEvent
	handler := func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e)
	}
	wait := func(n int) []DomainEvent {
		require.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return len(got) >= n
		}, time.Second, 5*time.Millisecond)
		mu.Lock()
		defer mu.Unlock()
		return append([]DomainEvent(nil), got...)
	}
	return handler, wait
}

func TestPublishDeliversInOrder(t *testing.T) {
	b := New(nil)
	defer b.Close()

	handler, wait := collect(t)
	b.Subscribe(EventTransitionStarted, handler)

	b.Publish(TransitionStartedEvent{From: 1, To: 2})
	b.Publish(TransitionCompletedEvent{Section: 2}) // not subscribed
	b.Publish(TransitionStartedEvent{From: 2, To: 3})

	got := wait(2)
	require.Len(t, got, 2)
	assert.Equal(t, TransitionStartedEvent{From: 1, To: 2}, got[0])
	assert.Equal(t, TransitionStartedEvent{From: 2, To: 3}, got[1])
}

func TestSubscribeAllAndUnsubscribe(t *testing.T) {
	b := New(nil)
	defer b.Close()

	all, waitAll := collect(t)
	b.SubscribeAll(all)

	var calls int
	var mu sync.Mutex
	unsubscribe := b.Subscribe(EventPageChanged, func(DomainEvent) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	unsubscribe()

	b.Publish(PageChangedEvent{Page: 1, Pages: 3})
	b.Publish(SlideshowStoppedEvent{ID: 4})

	got := waitAll(2)
	assert.Len(t, got, 2)
	mu.Lock()
	assert.Equal(t, 0, calls)
	mu.Unlock()
}

func TestHandlerPanicIsContained(t *testing.T) {
	b := New(nil)
	defer b.Close()

	handler, wait := collect(t)
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, handler)

	b.Publish(ErrorEvent{Message: "x"})
	assert.Len(t, wait(1), 1)
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New(nil)
	b.Close()
	b.Close()
	assert.NotPanics(t, func() { b.Publish(ErrorEvent{Message: "late"}) })
}

func TestPublishDoesNotWaitForHandlers(t *testing.T) {
	b := New(nil)
	defer b.Close()

	release := make(chan struct{})
	handled := make(chan struct{})
	b.Subscribe(EventError, func(DomainEvent) {
		<-release
		close(handled)
	})

	published := make(chan struct{})
	go func() {
		b.Publish(ErrorEvent{Message: "x"})
		close(published)
	}()

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a running handler")
	}
	close(release)
	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("handler never ran")
	}
}
