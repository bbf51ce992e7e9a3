package register

import "testing"

func TestEventFreshChannelHasNothingPending(t *testing.T) {
	var e Event[int32]

	if e.Pending() {
		t.Fatal("fresh channel reports pending")
	}
	if v, ok := e.Consume(); ok || v != 0 {
		t.Fatalf("fresh channel delivered (%d, %v)", v, ok)
	}
}

func TestEventDeliversExactlyOncePerPost(t *testing.T) {
	var e Event[int32]

	e.Post(42)
	if !e.Pending() {
		t.Fatal("posted value not pending")
	}

	v, ok := e.Consume()
	if !ok || v != 42 {
		t.Fatalf("expected (42, true), got (%d, %v)", v, ok)
	}

	if e.Pending() {
		t.Fatal("channel still pending after consume")
	}
	if _, ok := e.Consume(); ok {
		t.Fatal("second consume delivered the value again")
	}
}

func TestEventLatestPostWins(t *testing.T) {
	var e Event[int32]

	e.Post(1)
	e.Post(2)
	e.Post(3)

	v, ok := e.Consume()
	if !ok || v != 3 {
		t.Fatalf("expected the latest post (3, true), got (%d, %v)", v, ok)
	}
	if _, ok := e.Consume(); ok {
		t.Fatal("overwritten posts were queued instead of dropped")
	}
}

func TestEventPendingIsNonDestructive(t *testing.T) {
	var e Event[bool]

	e.Post(true)
	for i := 0; i < 3; i++ {
		if !e.Pending() {
			t.Fatalf("Pending() consumed the value on check %d", i)
		}
	}
	if v, ok := e.Consume(); !ok || !v {
		t.Fatalf("expected (true, true) after pending checks, got (%v, %v)", v, ok)
	}
}

func TestEventRepostAfterConsume(t *testing.T) {
	var e Event[int32]

	e.Post(1)
	if v, ok := e.Consume(); !ok || v != 1 {
		t.Fatalf("first cycle: got (%d, %v)", v, ok)
	}
	e.Post(2)
	if v, ok := e.Consume(); !ok || v != 2 {
		t.Fatalf("second cycle: got (%d, %v)", v, ok)
	}
}
