// ABOUTME: Tests for the change-notification bus.
// ABOUTME: Verifies delivery order and unsubscribe behavior.
package notify

import "testing"

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe(func(e Event) { order = append(order, "first") })
	bus.Subscribe(func(e Event) { order = append(order, "second") })
	bus.Subscribe(func(e Event) { order = append(order, "third") })

	bus.Publish(Event{Kind: KindSession})

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Errorf("unexpected delivery order: %v", order)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()

	calls := 0
	cancel := bus.Subscribe(func(e Event) { calls++ })

	bus.Publish(Event{Kind: KindWorkouts})
	cancel()
	bus.Publish(Event{Kind: KindWorkouts})

	if calls != 1 {
		t.Errorf("expected 1 call after unsubscribe, got %d", calls)
	}

	// A second cancel is a no-op
	cancel()
}

func TestHandlerMaySubscribeDuringPublish(t *testing.T) {
	bus := NewBus()

	late := 0
	bus.Subscribe(func(e Event) {
		bus.Subscribe(func(e Event) { late++ })
	})

	bus.Publish(Event{Kind: KindHealth})
	if late != 0 {
		t.Error("handler subscribed mid-publish must not see the same event")
	}

	bus.Publish(Event{Kind: KindHealth})
	if late != 1 {
		t.Errorf("late subscriber should see the next event once, got %d", late)
	}
}
