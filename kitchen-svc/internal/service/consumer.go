package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"otomo-storefront/kitchen-svc/internal/domain"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Kitchen Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(event)
	}
}

func (c *Consumer) ProcessEvent(event domain.OrderEvent) {
	switch event.Type {
	case "new_order":
		log.Printf("Processing order: OrderID=%s, Items=%d, Total=%s",
			event.OrderID, len(event.Items), event.Total)

		if err := c.Store.RecordOrder(event); err != nil {
			log.Printf("Error recording order: %v", err)
			return
		}

		log.Printf("Successfully processed order %s", event.OrderID)

	case "new_reservation":
		log.Printf("Processing reservation: ReservationID=%s", event.ReservationID)

		if err := c.Store.RecordReservation(event); err != nil {
			log.Printf("Error recording reservation: %v", err)
			return
		}

		log.Printf("Successfully processed reservation %s", event.ReservationID)

	default:
		log.Printf("Skipping message with type %q", event.Type)
	}
}
