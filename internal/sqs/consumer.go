package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

const (
	receiveBatchSize   = 10
	receiveWaitSeconds = 20
)

// ErrUndecodable marks a queue message that can never become a ProductMessage.
var ErrUndecodable = errors.New("undecodable product notification")

// ConsumerAPI defines the interface for SQS operations used by Consumer.
type ConsumerAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// Handler processes one decoded product notification.
type Handler func(ctx context.Context, msg ProductMessage) error

// Consumer reads product notifications from an SQS queue and hands them to a Handler.
//
// A notification is deleted once handled. Handler failures leave it on the
// queue for redelivery; undecodable notifications are discarded since
// retrying cannot fix them.
type Consumer struct {
	client   ConsumerAPI
	queueURL string
	handler  Handler
}

// NewConsumer creates a new SQS Consumer. A nil handler logs every notification.
func NewConsumer(client ConsumerAPI, queueURL string, handler Handler) *Consumer {
	if handler == nil {
		handler = LogNotification
	}
	return &Consumer{
		client:   client,
		queueURL: queueURL,
		handler:  handler,
	}
}

// LogNotification logs a received product notification. Deletions only log
// what identifies the removed product.
func LogNotification(_ context.Context, msg ProductMessage) error {
	attrs := []any{
		slog.String("action", string(msg.Action)),
		slog.String("product_id", msg.ProductID),
		slog.String("name", msg.Name),
	}
	if msg.Action != ActionDeleted {
		attrs = append(attrs,
			slog.Float64("price", msg.Price),
			slog.String("category", msg.Category),
			slog.Bool("in_stock", msg.InStock),
		)
	}
	slog.Info("Received product notification", attrs...)
	return nil
}

// Start polls the queue until the context is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	slog.Info("Starting product notification consumer", slog.String("queueURL", c.queueURL))

	for ctx.Err() == nil {
		if err := c.receiveMessages(ctx); err != nil && ctx.Err() == nil {
			slog.Error("Error receiving product notifications", slog.Any("err", err))
		}
	}

	slog.Info("Stopping product notification consumer")
	return ctx.Err()
}

func (c *Consumer) receiveMessages(ctx context.Context) error {
	result, err := c.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(c.queueURL),
		MaxNumberOfMessages: receiveBatchSize,
		WaitTimeSeconds:     receiveWaitSeconds,
	})
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, message := range result.Messages {
		err := c.processMessage(ctx, message)
		switch {
		case errors.Is(err, ErrUndecodable):
			slog.Warn("Discarding product notification",
				slog.String("message_id", aws.ToString(message.MessageId)),
				slog.Any("err", err),
			)
		case err != nil:
			slog.Error("Product notification will be redelivered",
				slog.String("message_id", aws.ToString(message.MessageId)),
				slog.Any("err", err),
			)
			continue
		}

		if err := c.deleteMessage(ctx, message); err != nil {
			slog.Error("Error deleting message", slog.Any("err", err))
		}
	}

	return nil
}

func (c *Consumer) processMessage(ctx context.Context, message types.Message) error {
	msg, err := decodeProductMessage(message)
	if err != nil {
		return err
	}

	if err := c.handler(ctx, msg); err != nil {
		return fmt.Errorf("failed to handle %s notification for product %s: %w", msg.Action, msg.ProductID, err)
	}
	return nil
}

func decodeProductMessage(message types.Message) (ProductMessage, error) {
	if message.Body == nil {
		return ProductMessage{}, fmt.Errorf("%w: message body is nil", ErrUndecodable)
	}

	var msg ProductMessage
	if err := json.Unmarshal([]byte(*message.Body), &msg); err != nil {
		return ProductMessage{}, fmt.Errorf("%w: failed to unmarshal message: %w", ErrUndecodable, err)
	}
	if err := msg.Validate(); err != nil {
		return ProductMessage{}, fmt.Errorf("%w: %w", ErrUndecodable, err)
	}
	return msg, nil
}

func (c *Consumer) deleteMessage(ctx context.Context, message types.Message) error {
	_, err := c.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.queueURL),
		ReceiptHandle: message.ReceiptHandle,
	})
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}
