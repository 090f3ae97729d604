package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/lunchly/internal/domain"
)

func TestProducer_Publish(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	producer := newProducer(mockProducer, "", log.WithField("component", "kafka-producer-test"))

	if producer.topic != DefaultTopic {
		t.Fatalf("expected default topic, got %s", producer.topic)
	}

	mockProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != DefaultTopic {
			t.Errorf("unexpected topic %s", msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "17" {
			t.Errorf("expected key 17, got %s", key)
		}
		if len(msg.Headers) != 1 || string(msg.Headers[0].Value) != string(domain.EventTypeReservationSaved) {
			t.Errorf("unexpected headers: %+v", msg.Headers)
		}

		raw, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var decoded domain.Event
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return err
		}
		if decoded.EntityID != 17 || decoded.CustomerID != 3 || !decoded.Created {
			t.Errorf("unexpected payload: %+v", decoded)
		}
		if decoded.Timestamp.IsZero() {
			t.Error("timestamp should be filled in")
		}
		return nil
	})

	err := producer.Publish(domain.Event{
		Type:       domain.EventTypeReservationSaved,
		EntityID:   17,
		CustomerID: 3,
		Created:    true,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := producer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_Publish_Error(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	producer := newProducer(mockProducer, "custom.topic", log.WithField("component", "kafka-producer-test"))

	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := producer.Publish(domain.Event{
		Type:      domain.EventTypeCustomerSaved,
		EntityID:  1,
		Timestamp: time.Now(),
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}
