package api

import (
	"testing"
	"time"
)

func TestBroadcasterDeliversToMatchingSession(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	sub := b.Subscribe("sess-1")
	defer b.Unsubscribe(sub)

	b.Broadcast(BroadcastEvent{Type: EventProgress, SessionID: "sess-1", Line: 1})
	b.Broadcast(BroadcastEvent{Type: EventProgress, SessionID: "sess-2", Line: 2})

	select {
	case ev := <-sub.Channel:
		if ev.SessionID != "sess-1" {
			t.Errorf("expected event for sess-1, got %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the matching event")
	}

	select {
	case ev := <-sub.Channel:
		t.Fatalf("did not expect a second event, got %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBroadcasterWildcardSubscription(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	sub := b.Subscribe("")
	defer b.Unsubscribe(sub)

	b.Broadcast(BroadcastEvent{Type: EventDone, SessionID: "sess-1"})

	select {
	case ev := <-sub.Channel:
		if ev.Type != EventDone {
			t.Errorf("expected a done event, got %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the event")
	}
}

func TestBroadcasterUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	sub := b.Subscribe("sess-1")
	b.Unsubscribe(sub)

	select {
	case _, ok := <-sub.Channel:
		if ok {
			t.Error("expected the channel to be closed after unsubscribe")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the channel to close")
	}
}
