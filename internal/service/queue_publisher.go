// Package queue_publisher publishes casting domain events to RabbitMQ.
// Publishing is best-effort: errors are logged and returned so callers can
// ignore failures without interrupting the request flow, and a nil
// Publisher silently drops every event.
package queue_publisher

import (
    "context"
    "encoding/json"
    "log"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"

    q "github.com/iliyamo/casting-agency/internal/queue"
)

// Queue names, also used as routing keys on the default exchange.
const (
    queuePerformanceCreated = "casting.performance.created"
    queueActorDeleted       = "casting.actor.deleted"
    queueMovieDeleted       = "casting.movie.deleted"
)

// Publisher holds the broker URL.  Connections are opened per publish; the
// event volume of a casting agency does not justify a pooled channel.
type Publisher struct {
    url string
}

// New returns a Publisher for the given broker URL, or nil when the URL is
// empty so that event publishing is disabled cleanly.
func New(url string) *Publisher {
    if url == "" {
        return nil
    }
    return &Publisher{url: url}
}

// PerformanceCreated publishes a PerformanceCreatedEvent.
func (p *Publisher) PerformanceCreated(ctx context.Context, event q.PerformanceCreatedEvent) error {
    return p.publish(ctx, queuePerformanceCreated, event)
}

// ActorDeleted publishes an ActorDeletedEvent.
func (p *Publisher) ActorDeleted(ctx context.Context, event q.ActorDeletedEvent) error {
    return p.publish(ctx, queueActorDeleted, event)
}

// MovieDeleted publishes a MovieDeletedEvent.
func (p *Publisher) MovieDeleted(ctx context.Context, event q.MovieDeletedEvent) error {
    return p.publish(ctx, queueMovieDeleted, event)
}

// publish marshals the event and sends it to the named durable queue.  It
// never panics; any error is logged and returned.
func (p *Publisher) publish(ctx context.Context, name string, event any) error {
    if p == nil {
        return nil
    }
    conn, err := amqp.Dial(p.url)
    if err != nil {
        log.Printf("rabbitmq: dial failed: %v", err)
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        log.Printf("rabbitmq: channel open failed: %v", err)
        return err
    }
    defer func() { _ = ch.Close() }()

    // Ensure the queue exists (idempotent).  Durable so messages survive
    // broker restarts.
    if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
        log.Printf("rabbitmq: queue declare failed: %v", err)
        return err
    }

    body, err := json.Marshal(event)
    if err != nil {
        log.Printf("rabbitmq: marshal event failed: %v", err)
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx, "", name, false, false, pub); err != nil {
        log.Printf("rabbitmq: publish failed: %v", err)
        return err
    }
    return nil
}
