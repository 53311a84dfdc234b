package handler

import (
	"testing"

	"github.com/gofiber/contrib/websocket"
)

func TestTrackingRoomMembership(t *testing.T) {
	room := &trackingRoom{conns: make(map[*websocket.Conn]bool)}
	a := &websocket.Conn{}
	b := &websocket.Conn{}

	room.add(a)
	room.add(b)
	if len(room.conns) != 2 {
		t.Fatalf("room has %d viewers, want 2", len(room.conns))
	}

	// The room must only report empty, and so tear down its one
	// subscription, when the last viewer leaves.
	if room.remove(a) {
		t.Error("room with a remaining viewer reported empty")
	}
	if !room.remove(b) {
		t.Error("emptied room not reported empty")
	}
}

func TestTrackingRoomDoubleAdd(t *testing.T) {
	room := &trackingRoom{conns: make(map[*websocket.Conn]bool)}
	c := &websocket.Conn{}

	room.add(c)
	room.add(c)
	if len(room.conns) != 1 {
		t.Errorf("same connection counted %d times", len(room.conns))
	}
	if !room.remove(c) {
		t.Error("room not empty after removing its only viewer")
	}
}

func TestTrackingChannelPerOrder(t *testing.T) {
	if trackingChannel("ORD-AAAA1111") == trackingChannel("ORD-BBBB2222") {
		t.Error("different orders share a tracking channel")
	}
	if got := trackingChannel("ORD-AAAA1111"); got != "ordine:ORD-AAAA1111" {
		t.Errorf("trackingChannel = %q", got)
	}
}
