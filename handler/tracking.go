package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"pizzeria_manager/database"
	"pizzeria_manager/helper"
	"pizzeria_manager/model"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

// trackingRoom holds every open tracking page for one order plus the
// room's single Redis subscription. One subscriber per room: each
// update is written to each connection exactly once, however many
// pages are open.
type trackingRoom struct {
	conns  map[*websocket.Conn]bool
	pubsub *redis.PubSub
}

func (r *trackingRoom) add(c *websocket.Conn) {
	r.conns[c] = true
}

// remove reports whether the room is now empty.
func (r *trackingRoom) remove(c *websocket.Conn) bool {
	delete(r.conns, c)
	return len(r.conns) == 0
}

var (
	trackingRooms = make(map[string]*trackingRoom)
	trackingMu    sync.Mutex
)

// PublishOrderStatus fans a status change out to every open tracking
// page for the order, via the Redis channel.
func PublishOrderStatus(orderCode, status string) {
	payload, err := json.Marshal(map[string]string{
		"codice": orderCode,
		"status": status,
	})
	if err != nil {
		return
	}
	if err := database.RDB.Publish(context.Background(), trackingChannel(orderCode), payload).Err(); err != nil {
		log.Printf("Errore publish stato ordine %s: %v", orderCode, err)
	}
}

func trackingChannel(orderCode string) string {
	return fmt.Sprintf("ordine:%s", orderCode)
}

// joinTracking registers the connection, creating the room and its one
// subscription on first join.
func joinTracking(orderCode string, c *websocket.Conn) {
	trackingMu.Lock()
	defer trackingMu.Unlock()

	room := trackingRooms[orderCode]
	if room == nil {
		room = &trackingRoom{
			conns:  make(map[*websocket.Conn]bool),
			pubsub: database.RDB.Subscribe(context.Background(), trackingChannel(orderCode)),
		}
		trackingRooms[orderCode] = room
		go fanOutStatusUpdates(orderCode, room.pubsub)
	}
	room.add(c)
}

// leaveTracking drops the connection and tears the room down when the
// last viewer leaves; closing the subscription ends the fan-out loop.
func leaveTracking(orderCode string, c *websocket.Conn) {
	trackingMu.Lock()
	defer trackingMu.Unlock()

	room := trackingRooms[orderCode]
	if room == nil {
		return
	}
	if room.remove(c) {
		room.pubsub.Close()
		delete(trackingRooms, orderCode)
	}
}

func fanOutStatusUpdates(orderCode string, pubsub *redis.PubSub) {
	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		trackingMu.Lock()
		room := trackingRooms[orderCode]
		if room == nil {
			trackingMu.Unlock()
			return
		}
		for conn := range room.conns {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				room.remove(conn)
			}
		}
		trackingMu.Unlock()
	}
}

// TrackingWebsocket streams live status changes for one order.
func TrackingWebsocket(c *websocket.Conn) {
	orderCode := c.Params("code")
	defer c.Close()

	// Send the current status right away so a freshly opened page does
	// not wait for the next transition. Terminal orders never move
	// again, so no subscription is held for them.
	var order model.Order
	if err := database.DB.Where("public_code = ?", orderCode).First(&order).Error; err == nil {
		c.WriteJSON(map[string]string{"codice": order.PublicCode, "status": order.Status})
		if helper.IsTerminalStatus(order.Status) {
			return
		}
	}

	joinTracking(orderCode, c)
	defer leaveTracking(orderCode, c)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
