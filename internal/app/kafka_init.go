package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/lunchly/internal/messaging/kafka"
)

// initKafkaProducer создаёт producer, если список брокеров не пуст.
// При пустом списке возвращает nil, nil: события просто не публикуются.
func initKafkaProducer(brokers []string, topic string, logger *log.Entry) (*kafka.Producer, error) {
	if len(brokers) == 0 {
		return nil, nil
	}

	producer, err := kafka.NewProducer(brokers, topic)
	if err != nil {
		logger.WithError(err).Warn("failed to create kafka producer, continuing without events")
		return nil, err
	}

	logger.WithFields(log.Fields{"brokers": brokers, "topic": topic}).Info("kafka producer initialized")
	return producer, nil
}

func closeKafka(producer *kafka.Producer, logger *log.Entry) {
	if producer == nil {
		return
	}

	if err := producer.Close(); err != nil {
		logger.WithError(err).Warn("failed to close kafka producer")
	} else {
		logger.Info("kafka producer closed")
	}
}
