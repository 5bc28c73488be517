// Package queue_publisher publishes domain events to RabbitMQ.  Publishing
// is best effort: errors are logged and returned so callers can ignore
// them without interrupting the request that triggered the event.
package queue_publisher

import (
    "context"
    "encoding/json"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/sirupsen/logrus"

    q "github.com/NHDanDz/movieapp-sub001/internal/queue"
)

// PublishReservationConfirmed publishes a ReservationConfirmedEvent to the
// durable reservation.confirmed queue.  Messages are persistent so a
// broker restart does not drop confirmations awaiting the consumer.
func PublishReservationConfirmed(ctx context.Context, event q.ReservationConfirmedEvent) error {
    conn, err := amqp.Dial(q.BrokerURL())
    if err != nil {
        logrus.WithError(err).Warn("rabbitmq: dial failed")
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        logrus.WithError(err).Warn("rabbitmq: channel open failed")
        return err
    }
    defer func() { _ = ch.Close() }()

    // Idempotent declare; durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare("reservation.confirmed", true, false, false, false, nil); err != nil {
        logrus.WithError(err).Warn("rabbitmq: queue declare failed")
        return err
    }

    body, err := json.Marshal(event)
    if err != nil {
        logrus.WithError(err).Warn("rabbitmq: marshal event failed")
        return err
    }
    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx, "", "reservation.confirmed", false, false, pub); err != nil {
        logrus.WithError(err).Warn("rabbitmq: publish failed")
        return err
    }
    return nil
}
