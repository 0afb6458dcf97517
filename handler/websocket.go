package handler

import (
	"context"
	"encoding/json"
	"log"
	"restro_manager/config"
	"restro_manager/constants"
	"restro_manager/model"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{
		Addr: config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
	})

	kotClients = make(map[*websocket.Conn]bool)
	mu         sync.Mutex
)

// KotWebsocket streams kot_update invalidation events to kitchen and
// floor clients. The payload never carries authoritative order state;
// clients re-fetch on receipt.
func KotWebsocket(c *websocket.Conn) {
	defer func() {
		mu.Lock()
		delete(kotClients, c)
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	kotClients[c] = true
	mu.Unlock()

	pubsub := redisClient.Subscribe(context.Background(), constants.KOT_CHANNEL)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

// BroadcastKotUpdate publishes an invalidation event after an order or
// dish mutation commits.
func BroadcastKotUpdate(orderId uint) {
	event := model.KotEvent{Kind: "kot_changed", AffectedOrderId: orderId}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal KOT event: %v", err)
		return
	}

	if err := redisClient.Publish(context.Background(), constants.KOT_CHANNEL, payload).Err(); err != nil {
		log.Printf("Failed to publish KOT event: %v", err)
	}
}
