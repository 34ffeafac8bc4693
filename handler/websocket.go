package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"resto_manager/database"
	"resto_manager/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/golang-jwt/jwt/v5"
)

var (
	orderFeedClients = make(map[uint]map[*websocket.Conn]bool)
	orderFeedMu      sync.Mutex
)

func orderChannel(restaurantId uint) string {
	return fmt.Sprintf("orders:%d", restaurantId)
}

// PublishOrderEvent pushes a freshly composed order onto the restaurant's
// feed channel. No redis, no feed; checkout does not care either way.
func PublishOrderEvent(restaurantId uint, order model.Order, client model.Client) {
	if database.Redis == nil {
		return
	}
	payload, err := json.Marshal(newOrderEvent(order, client))
	if err != nil {
		return
	}
	if err := database.Redis.Publish(context.Background(), orderChannel(restaurantId), payload).Err(); err != nil {
		log.Printf("Failed to publish order event: %v", err)
	}
}

type orderEvent struct {
	Event  string       `json:"event"`
	Order  model.Order  `json:"order"`
	Client model.Client `json:"client"`
}

func newOrderEvent(order model.Order, client model.Client) orderEvent {
	return orderEvent{Event: "new_order", Order: order, Client: client}
}

func restaurantIdFromConn(c *websocket.Conn) (uint, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return 0, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	id, ok := claims["restaurantId"].(float64)
	if !ok || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// OrderFeedConnection streams new orders to the dashboard as they come in.
// One redis subscription per connection, fanned out to every socket of the
// same restaurant.
func OrderFeedConnection(c *websocket.Conn) {
	restaurantId, ok := restaurantIdFromConn(c)
	if !ok || database.Redis == nil {
		c.Close()
		return
	}

	defer func() {
		orderFeedMu.Lock()
		if orderFeedClients[restaurantId] != nil {
			delete(orderFeedClients[restaurantId], c)
		}
		orderFeedMu.Unlock()
		c.Close()
	}()

	orderFeedMu.Lock()
	if orderFeedClients[restaurantId] == nil {
		orderFeedClients[restaurantId] = make(map[*websocket.Conn]bool)
	}
	orderFeedClients[restaurantId][c] = true
	orderFeedMu.Unlock()

	pubsub := database.Redis.Subscribe(context.Background(), orderChannel(restaurantId))
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		orderFeedMu.Lock()
		for conn := range orderFeedClients[restaurantId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(orderFeedClients[restaurantId], conn)
			}
		}
		orderFeedMu.Unlock()
	}
}
