package worker

import (
	"context"
	"testing"

	"github.com/dropmart/dropmart/internal/queue"

	"github.com/hibiken/asynq"
)

func TestIsGuestPlaceholderReceiver(t *testing.T) {
	if !isGuestPlaceholderReceiver("guest@example.com") {
		t.Fatalf("expected placeholder email to be recognized")
	}
	if !isGuestPlaceholderReceiver("  Guest@Example.COM  ") {
		t.Fatalf("expected trimmed case-insensitive match")
	}
	if isGuestPlaceholderReceiver("buyer@test.dev") {
		t.Fatalf("expected real email to pass")
	}
	if isGuestPlaceholderReceiver("") {
		t.Fatalf("expected empty email to pass through")
	}
}

func TestHandleOrderCreatedEmailNilGuards(t *testing.T) {
	var nilConsumer *Consumer
	if err := nilConsumer.handleOrderCreatedEmail(context.Background(), nil); err != nil {
		t.Fatalf("nil consumer should be ignored, got: %v", err)
	}

	consumer := NewConsumer(nil)
	if err := consumer.handleOrderCreatedEmail(context.Background(), nil); err != nil {
		t.Fatalf("nil task should be ignored, got: %v", err)
	}
}

func TestHandleOrderCreatedEmailBadPayload(t *testing.T) {
	consumer := NewConsumer(nil)

	task := asynq.NewTask(queue.TaskOrderCreatedEmail, []byte("not-json"))
	if err := consumer.handleOrderCreatedEmail(context.Background(), task); err == nil {
		t.Fatalf("expected error for malformed payload")
	}

	task = asynq.NewTask(queue.TaskOrderCreatedEmail, []byte(`{"order_id":0}`))
	if err := consumer.handleOrderCreatedEmail(context.Background(), task); err != nil {
		t.Fatalf("zero order id should be skipped, got: %v", err)
	}
}
