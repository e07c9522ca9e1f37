package kafka

import (
	"fmt"

	"moving-service/src/pkg/log"

	k "gopkg.in/confluentinc/confluent-kafka-go.v1/kafka"
)

type producer struct {
	producer *k.Producer
	log      log.Log
}

func NewProducer(config *k.ConfigMap, logger log.Log) (Producer, error) {
	p, err := k.NewProducer(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	prod := &producer{
		producer: p,
		log:      logger,
	}

	// drain delivery reports so the internal queue never fills up
	go func() {
		for e := range p.Events() {
			if m, ok := e.(*k.Message); ok && m.TopicPartition.Error != nil {
				logger.Error("kafka-producer", m.TopicPartition.Error.Error(), "delivery", *m.TopicPartition.Topic)
			}
		}
	}()

	return prod, nil
}

func (p *producer) Publish(message *k.Message) error {
	return p.producer.Produce(message, nil)
}

func (p *producer) Close() {
	p.producer.Flush(5000)
	p.producer.Close()
}
