package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

const groupID = "tigercart-consumer-group"

// The consumer tails both streams the service emits: order lifecycle events
// from the outbox and audit entries from the HTTP layer.
var topics = []string{"order_events", "audit_logs"}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	brokers := strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ",")

	log.Printf("Starting consumer on brokers %v", brokers)

	group, groupCtx := errgroup.WithContext(ctx)
	for _, topic := range topics {
		topic := topic
		group.Go(func() error {
			consumeTopic(groupCtx, brokers, topic)
			return nil
		})
	}

	_ = group.Wait()
	log.Println("Consumer stopped")
}

func consumeTopic(ctx context.Context, brokers []string, topic string) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Printf("Error closing reader for %s: %v", topic, err)
		}
	}()

	log.Printf("Consumer connected to topic %q", topic)

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading from %s: %v", topic, err)
			time.Sleep(5 * time.Second)
			continue
		}

		printMessage(topic, m)
	}
}

func printMessage(topic string, m kafka.Message) {
	var pretty map[string]any
	value := string(m.Value)
	if err := json.Unmarshal(m.Value, &pretty); err == nil {
		if indented, err := json.MarshalIndent(pretty, "", "  "); err == nil {
			value = string(indented)
		}
	}

	log.Printf("topic=%s partition=%d offset=%d key=%s\n%s",
		topic, m.Partition, m.Offset, string(m.Key), value)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
