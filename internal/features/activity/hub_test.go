package activity

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestHubFanOut(t *testing.T) {
	hub := NewHub(zap.NewNop())

	a := hub.Subscribe("t1")
	b := hub.Subscribe("t1")
	defer hub.Unsubscribe(b)

	hub.Publish(Event{Type: "donation.created", TempleID: "t1"})

	for name, ch := range map[string]chan Event{"a": a, "b": b} {
		select {
		case ev := <-ch:
			if ev.Type != "donation.created" {
				t.Errorf("%s: Type = %q, want donation.created", name, ev.Type)
			}
			if ev.At.IsZero() {
				t.Errorf("%s: At not stamped", name)
			}
		case <-time.After(time.Second):
			t.Fatalf("%s: no event received", name)
		}
	}

	hub.Unsubscribe(a)
	if _, ok := <-a; ok {
		t.Error("channel still open after Unsubscribe")
	}
}

func TestHubDeliversOnlyToOwnTemple(t *testing.T) {
	hub := NewHub(zap.NewNop())

	a := hub.Subscribe("templeA")
	b := hub.Subscribe("templeB")
	defer hub.Unsubscribe(a)
	defer hub.Unsubscribe(b)

	hub.Publish(Event{Type: "donation.created", TempleID: "templeA"})
	hub.Publish(Event{Type: "expense.created", TempleID: "templeB"})

	select {
	case ev := <-a:
		if ev.TempleID != "templeA" {
			t.Errorf("subscriber a received event for %q", ev.TempleID)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber a: no event received")
	}
	select {
	case ev := <-b:
		if ev.TempleID != "templeB" {
			t.Errorf("subscriber b received event for %q", ev.TempleID)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber b: no event received")
	}

	// Neither feed may hold the other temple's event.
	select {
	case ev := <-a:
		t.Errorf("subscriber a received a second event for %q", ev.TempleID)
	default:
	}
	select {
	case ev := <-b:
		t.Errorf("subscriber b received a second event for %q", ev.TempleID)
	default:
	}
}

func TestHubPublishDoesNotBlockOnSlowSubscriber(t *testing.T) {
	hub := NewHub(zap.NewNop())

	ch := hub.Subscribe("t1")
	defer hub.Unsubscribe(ch)

	// Nobody drains ch; publishing past the buffer must still return.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			hub.Publish(Event{Type: "expense.created", TempleID: "t1"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}
}
