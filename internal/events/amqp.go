package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"phonestore/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultQueue receives order notifications.
const DefaultQueue = "orders"

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher sends one persistent JSON message per created order to a durable queue.
type AMQPPublisher struct {
	conn   io.Closer
	mu     sync.Mutex
	ch     amqpChannel
	queue  string
	logger *log.Logger
}

// DialAMQP connects to the broker and declares the queue.
func DialAMQP(url, queue string, logger *log.Logger) (*AMQPPublisher, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if queue == "" {
		queue = DefaultQueue
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return &AMQPPublisher{conn: conn, ch: ch, queue: queue, logger: logger}, nil
}

func (p *AMQPPublisher) PublishOrderCreated(ctx context.Context, order domain.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order %s: %w", order.ID, err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    order.ID,
		Type:         RoutingOrderCreated,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.logger.Printf("events: publish order id=%s error=%v", order.ID, err)
		return fmt.Errorf("publish order %s: %w", order.ID, err)
	}
	p.logger.Printf("events: published %s id=%s queue=%s", RoutingOrderCreated, order.ID, p.queue)
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
