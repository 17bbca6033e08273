package stream

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// create fake client subscribed to one tag room
	client := &Client{
		Send: make(chan []byte, 10),
		Room: "#fyp",
	}

	// register client
	hub.register <- client

	// publish an occurrence of the tag
	hub.PublishOccurrences("hashtag", "c1", []string{"#fyp"})

	select {
	case got := <-client.Send:
		var occ Occurrence
		if err := json.Unmarshal(got, &occ); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if occ.Tag != "#fyp" || occ.CaptionID != "c1" || occ.Kind != "hashtag" {
			t.Fatalf("unexpected occurrence: %+v", occ)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for occurrence")
	}

	// unregister client
	hub.unregister <- client
}

// A slow client gets evicted (Send closed) by the broadcast branch; its
// readPump still unregisters it afterwards, which must be a no-op rather
// than a second close of Send.
func TestHubUnregisterAfterEviction(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// unbuffered Send that nobody reads, so the first broadcast evicts it
	slow := &Client{
		Send: make(chan []byte),
		Room: "#fyp",
	}
	hub.register <- slow

	hub.PublishOccurrences("hashtag", "c1", []string{"#fyp"})

	// the disconnect path always follows eviction
	hub.unregister <- slow

	// hub must still be alive and serving the room
	client := &Client{
		Send: make(chan []byte, 10),
		Room: "#fyp",
	}
	hub.register <- client
	hub.PublishOccurrences("hashtag", "c2", []string{"#fyp"})

	select {
	case got := <-client.Send:
		var occ Occurrence
		if err := json.Unmarshal(got, &occ); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if occ.CaptionID != "c2" {
			t.Fatalf("unexpected occurrence: %+v", occ)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("hub stopped serving after evicted client unregistered")
	}

	hub.unregister <- client
}

// Publishing after Stop must drop the occurrence, not block a caption
// ingestion handler forever.
func TestHubPublishAfterStopReturns(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{
		Send: make(chan []byte, 1),
		Room: "#fyp",
	}
	hub.register <- client

	hub.Stop()

	done := make(chan struct{})
	go func() {
		hub.PublishOccurrences("hashtag", "c1", []string{"#fyp"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("PublishOccurrences blocked after hub stop")
	}
}

func TestHubDoesNotCrossRooms(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "#viral",
	}
	hub.register <- client

	hub.PublishOccurrences("hashtag", "c2", []string{"#fyp"})
	hub.PublishOccurrences("hashtag", "c2", []string{"#viral"})

	select {
	case got := <-client.Send:
		var occ Occurrence
		if err := json.Unmarshal(got, &occ); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if occ.Tag != "#viral" {
			t.Fatalf("received occurrence for wrong room: %+v", occ)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for occurrence")
	}

	hub.unregister <- client
}
