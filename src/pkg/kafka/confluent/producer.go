package kafka

import (
	"fmt"

	k "gopkg.in/confluentinc/confluent-kafka-go.v1/kafka"

	"vocalwork/src/pkg/log"
)

type producer struct {
	producer *k.Producer
	log      log.Log
}

func NewProducer(config *k.ConfigMap, logger log.Log) (Producer, error) {
	p, err := k.NewProducer(config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return &producer{producer: p, log: logger}, nil
}

func (p *producer) Publish(message *k.Message) error {
	deliveryChan := make(chan k.Event, 1)
	if err := p.producer.Produce(message, deliveryChan); err != nil {
		return err
	}

	event := <-deliveryChan
	msg, ok := event.(*k.Message)
	if !ok {
		return fmt.Errorf("unexpected delivery event: %v", event)
	}
	if msg.TopicPartition.Error != nil {
		p.log.Error("kafka-producer", msg.TopicPartition.Error.Error(), "Publish", *message.TopicPartition.Topic)
		return msg.TopicPartition.Error
	}
	return nil
}

func (p *producer) Close() {
	p.producer.Flush(5000)
	p.producer.Close()
}
