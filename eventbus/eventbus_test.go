package eventbus

import "testing"

func TestDeliveryInRegistrationOrder(t *testing.T) {
	b := New[int]()
	var order []int
	b.Subscribe(func(v int) { order = append(order, 1) })
	b.Subscribe(func(v int) { order = append(order, 2) })
	b.Subscribe(func(v int) { order = append(order, 3) })
	b.Publish(0)
	want := []int{1, 2, 3}
	for i, v := range want {
		if order[i] != v {
			t.Fatalf("expected delivery order %v, got %v", want, order)
		}
	}
}

func TestPanicInHandlerDoesNotAbortDelivery(t *testing.T) {
	b := New[int]()
	second := false
	b.Subscribe(func(v int) { panic("boom") })
	b.Subscribe(func(v int) { second = true })
	b.Publish(0)
	if !second {
		t.Fatal("second handler should still run after the first panics")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New[int]()
	calls := 0
	id := b.Subscribe(func(v int) { calls++ })
	b.Unsubscribe(id)
	b.Publish(0)
	if calls != 0 {
		t.Fatalf("expected 0 calls after unsubscribe, got %d", calls)
	}
}

func TestReentrantPublishIsQueuedNotRecursive(t *testing.T) {
	b := New[int]()
	var seen []int
	b.Subscribe(func(v int) {
		seen = append(seen, v)
		if v == 1 {
			b.Publish(2) // published from within a handler
		}
	})
	b.Publish(1)
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Fatalf("expected [1 2] delivered in order, got %v", seen)
	}
}
