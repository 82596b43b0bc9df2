package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rabbitmq/amqp091-go"
)

type fakeChannel struct {
	declared   []string
	published  []amqp091.Publishing
	exchanges  []string
	declareErr error
	publishErr error
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.exchanges = append(f.exchanges, exchange)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, "roomsplit")
	if err != nil {
		t.Fatalf("newPublisher failed: %v", err)
	}
	if len(ch.declared) != 1 || ch.declared[0] != "roomsplit:fanout" {
		t.Errorf("Expected fanout exchange to be declared, got %v", ch.declared)
	}

	event := NewLedgerEvent(ExpenseAdded, "expense-1")
	if err := p.PublishLedgerChanged(context.Background(), event); err != nil {
		t.Fatalf("PublishLedgerChanged failed: %v", err)
	}

	if len(ch.published) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(ch.published))
	}
	msg := ch.published[0]
	if ch.exchanges[0] != "roomsplit" {
		t.Errorf("exchange = %s, want roomsplit", ch.exchanges[0])
	}
	if msg.ContentType != "application/json" || msg.DeliveryMode != amqp091.Persistent {
		t.Errorf("Unexpected message properties: %+v", msg)
	}

	var decoded LedgerEvent
	if err := json.Unmarshal(msg.Body, &decoded); err != nil {
		t.Fatalf("Body is not JSON: %v", err)
	}
	if decoded.Kind != ExpenseAdded || decoded.EntityID != "expense-1" {
		t.Errorf("Decoded event = %+v", decoded)
	}

	if err := p.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if !ch.closed {
		t.Error("Expected channel to be closed")
	}
}

func TestAMQPPublisher_Errors(t *testing.T) {
	t.Run("declare failure closes channel", func(t *testing.T) {
		ch := &fakeChannel{declareErr: errors.New("access refused")}
		if _, err := newPublisher(ch, "roomsplit"); err == nil {
			t.Fatal("Expected error from newPublisher")
		}
		if !ch.closed {
			t.Error("Expected channel to be closed after failed declare")
		}
	})

	t.Run("publish failure is returned", func(t *testing.T) {
		ch := &fakeChannel{publishErr: errors.New("channel closed")}
		p, err := newPublisher(ch, "roomsplit")
		if err != nil {
			t.Fatalf("newPublisher failed: %v", err)
		}
		err = p.PublishLedgerChanged(context.Background(), NewLedgerEvent(ExpensesCleared, ""))
		if err == nil {
			t.Error("Expected publish error")
		}
	})
}
