package events

import (
	"testing"
)

func TestBusPublishSubscribe(t *testing.T) {
	bus := New()

	var received []ProductEventData
	err := bus.Subscribe(EventProductCreated, func(data ProductEventData) {
		received = append(received, data)
	})
	if err != nil {
		t.Fatalf("Subscribe error: %v", err)
	}

	bus.Publish(EventProductCreated, ProductEventData{
		ProductID:    "p-1",
		ProductTitle: "Lamp",
		ActorName:    "Jane Doe",
	})

	if len(received) != 1 {
		t.Fatalf("expected one event, got %d", len(received))
	}
	if received[0].ProductTitle != "Lamp" {
		t.Fatalf("unexpected event: %+v", received[0])
	}
}

func TestBusIsolation(t *testing.T) {
	a := New()
	b := New()

	fired := false
	if err := a.Subscribe(EventProductDeleted, func(ProductEventData) {
		fired = true
	}); err != nil {
		t.Fatalf("Subscribe error: %v", err)
	}

	b.Publish(EventProductDeleted, ProductEventData{ProductID: "p-2"})
	if fired {
		t.Fatal("event crossed bus instances")
	}
}

func TestNilBusPublish(t *testing.T) {
	var bus *Bus
	// Must not panic.
	bus.Publish(EventProductUpdated, ProductEventData{})
}
