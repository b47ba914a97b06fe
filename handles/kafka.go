package handles

import (
	"time"

	"github.com/segmentio/kafka-go"

	"refkit/ptr"
)

// NewKafkaWriter returns a synchronous writer for topic. The writer dials
// lazily on first write.
func NewKafkaWriter(brokers []string, topic string) *ptr.Shared[kafka.Writer] {
	return ptr.New(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		BatchTimeout: 10 * time.Millisecond,
	})
}
