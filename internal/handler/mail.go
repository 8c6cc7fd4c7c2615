package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// publishMail serializes a mail message and hands it to the queue the
// mail worker consumes.
func (h *Handler) publishMail(msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
