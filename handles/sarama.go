package handles

import (
	"github.com/IBM/sarama"
	"github.com/cockroachdb/errors"

	"refkit/ptr"
)

// Producer binds a sarama SyncProducer to one topic.
type Producer struct {
	sarama.SyncProducer
	topic string
}

func (p *Producer) Topic() string {
	return p.topic
}

// Send publishes one keyed message and waits for the broker's ack.
func (p *Producer) Send(key, value []byte) error {
	_, _, err := p.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	return err
}

// NewProducer takes ownership of sp.
func NewProducer(sp sarama.SyncProducer, topic string) *ptr.Shared[Producer] {
	return ptr.New(&Producer{SyncProducer: sp, topic: topic})
}

// DialProducer connects a SyncProducer to brokers with acks from all
// in-sync replicas.
func DialProducer(brokers []string, topic string) (*ptr.Shared[Producer], error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	sp, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "dial kafka producer for %q", topic)
	}
	return NewProducer(sp, topic), nil
}
