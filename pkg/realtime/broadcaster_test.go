package realtime

import (
	"testing"
)

func TestNewBroadcaster(t *testing.T) {
	b := NewBroadcaster()
	if b == nil {
		t.Fatal("NewBroadcaster returned nil")
	}
	if b.Len() != 0 {
		t.Errorf("Len %d, want 0", b.Len())
	}
}

func TestBroadcaster_PublishDeliversToSubscribers(t *testing.T) {
	b := NewBroadcaster()
	ch1, cancel1 := b.Subscribe()
	ch2, cancel2 := b.Subscribe()
	defer cancel1()
	defer cancel2()

	b.Publish("letters")
	if got := <-ch1; got != "letters" {
		t.Errorf("ch1 got %q, want letters", got)
	}
	if got := <-ch2; got != "letters" {
		t.Errorf("ch2 got %q, want letters", got)
	}
}

func TestBroadcaster_CancelClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	cancel()
	cancel()
	if _, open := <-ch; open {
		t.Error("channel should be closed after cancel")
	}
	if b.Len() != 0 {
		t.Errorf("Len %d after cancel, want 0", b.Len())
	}
}

func TestBroadcaster_CancelRemovesFromDelivery(t *testing.T) {
	b := NewBroadcaster()
	_, cancel1 := b.Subscribe()
	ch2, cancel2 := b.Subscribe()
	defer cancel2()
	cancel1()

	b.Publish("score")
	if got := <-ch2; got != "score" {
		t.Errorf("ch2 got %q, want score", got)
	}
}

func TestBroadcaster_LaggingSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	defer cancel()
	for i := 0; i < subscriberBuffer*2; i++ {
		b.Publish("timer")
	}
	if len(ch) != subscriberBuffer {
		t.Errorf("buffered %d events, want %d", len(ch), subscriberBuffer)
	}
}
