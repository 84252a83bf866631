package messaging

import (
	"vocalwork/src/internal/model"
	kafka "vocalwork/src/pkg/kafka/confluent"
	"vocalwork/src/pkg/log"
)

type JobProducer struct {
	Producer[*model.JobEvent]
}

func NewJobProducer(producer kafka.Producer, logger log.Log) *JobProducer {
	return &JobProducer{
		Producer: Producer[*model.JobEvent]{
			Producer: producer,
			Topic:    "job-events",
			Log:      logger,
		},
	}
}
