package events

import "testing"

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()
	first, cancelFirst := bus.Subscribe()
	second, cancelSecond := bus.Subscribe()
	defer cancelFirst()
	defer cancelSecond()

	bus.Publish()

	select {
	case <-first:
	default:
		t.Fatal("expected a signal on the first subscription")
	}
	select {
	case <-second:
	default:
		t.Fatal("expected a signal on the second subscription")
	}
}

func TestPublishCoalescesWhenPending(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish()
	bus.Publish()
	bus.Publish()

	<-ch
	select {
	case <-ch:
		t.Fatal("expected pending signals to coalesce into one")
	default:
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe()
	cancel()

	bus.Publish()

	select {
	case <-ch:
		t.Fatal("expected no signal after cancel")
	default:
	}
}
