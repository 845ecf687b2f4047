package sse

import (
	"testing"
	"time"
)

func TestHubSubscribePublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	hub.Publish("emp-1", Event{UserID: "emp-1", Event: "leave_decision", Data: "accepted"})

	select {
	case got := <-ch:
		if got.Event != "leave_decision" {
			t.Errorf("event = %q, want leave_decision", got.Event)
		}
		if got.Data != "accepted" {
			t.Errorf("data = %v, want accepted", got.Data)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestHubPublishOtherUser(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	hub.Publish("emp-2", Event{UserID: "emp-2", Event: "leave_decision"})

	select {
	case got := <-ch:
		t.Fatalf("received event %q meant for another user", got.Event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubFanOut(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("emp-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("emp-1")
	defer cleanup2()

	if hub.SubscriberCount("emp-1") != 2 {
		t.Fatalf("SubscriberCount = %d, want 2", hub.SubscriberCount("emp-1"))
	}

	hub.Publish("emp-1", Event{Event: "ping"})

	for i, ch := range []chan Event{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d did not receive event", i+1)
		}
	}
}

func TestHubCleanup(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("emp-1")
	cleanup()

	if hub.SubscriberCount("emp-1") != 0 {
		t.Errorf("SubscriberCount after cleanup = %d, want 0", hub.SubscriberCount("emp-1"))
	}

	// Publishing after cleanup must not panic or block.
	hub.Publish("emp-1", Event{Event: "ping"})
}

func TestHubPublishFullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	done := make(chan struct{})
	go func() {
		// Channel capacity is 10; keep publishing well past it.
		for i := 0; i < 50; i++ {
			hub.Publish("emp-1", Event{Event: "ping"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber channel")
	}
}
