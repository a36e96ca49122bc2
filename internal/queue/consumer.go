package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/hall-reservation/internal/service"
)

// Seeder is the part of the schedule service the consumer needs.
type Seeder interface {
	SeedDefaultSchedules(ctx context.Context, hallID uint64, days int) (service.SeedResult, error)
}

// StartSeedConsumer connects to RabbitMQ, declares the durable hall.created
// queue and consumes hall-creation events, seeding each new hall's default
// availability. It runs a reconnect loop with capped exponential backoff
// and never returns; processing errors are logged and the offending message
// is rejected without requeue so a poison message cannot wedge the loop.
func StartSeedConsumer(seeder Seeder) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(BrokerURL())
		if err != nil {
			log.Printf("seed-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn, seeder); err != nil {
			log.Printf("seed-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection, seeder Seeder) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(10, 0, false); err != nil {
		log.Printf("seed-consumer: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(HallCreatedQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(HallCreatedQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleHallCreated(d.Body, seeder); err != nil {
			log.Printf("seed-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleHallCreated(body []byte, seeder Seeder) error {
	var ev HallCreatedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.HallID == 0 || ev.SeedDays <= 0 {
		return fmt.Errorf("malformed event: hall_id=%d seed_days=%d", ev.HallID, ev.SeedDays)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	res, err := seeder.SeedDefaultSchedules(ctx, ev.HallID, ev.SeedDays)
	if err != nil {
		return fmt.Errorf("seed hall %d: %w", ev.HallID, err)
	}
	log.Printf("seed-consumer: hall=%d %q seeded: created=%d skipped=%d failed=%d",
		ev.HallID, ev.HallName, res.Created, res.Skipped, res.Failed)
	return nil
}
