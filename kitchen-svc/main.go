package main

import (
	"context"
	"log"

	"otomo-storefront/config"
	"otomo-storefront/kitchen-svc/internal/service"
	"otomo-storefront/kitchen-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("orders", "kitchen-svc-consumer")
	defer reader.Close()

	log.Println("[kitchen-svc] consuming order events")

	consumer := service.NewConsumer(reader, storage.NewStore(rdb))
	consumer.Start(context.Background())
}
