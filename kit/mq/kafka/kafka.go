package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"

	mqKit "github.com/superj80820/user-profile-service/kit/mq"
)

type kafkaMQ struct {
	writer *kafka.Writer

	url   string
	topic string

	lock    sync.Mutex
	cancels []context.CancelFunc
}

var _ mqKit.MQTopic = (*kafkaMQ)(nil)

func CreateKafkaMQ(url, topic string) mqKit.MQTopic {
	return &kafkaMQ{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers:  []string{url},
			Topic:    topic,
			Balancer: &kafka.Hash{},
			Dialer: &kafka.Dialer{
				Timeout:   10 * time.Second,
				DualStack: true,
			},
		}),
		url:   url,
		topic: topic,
	}
}

func (k *kafkaMQ) Produce(ctx context.Context, message mqKit.Message) error {
	payload, err := message.Marshal()
	if err != nil {
		return errors.Wrap(err, "marshal message failed")
	}
	if err := k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(message.GetKey()),
		Value: payload,
	}); err != nil {
		return errors.Wrap(err, "write messages failed")
	}
	return nil
}

func (k *kafkaMQ) Subscribe(key string, notify mqKit.Notify) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{k.url},
		Topic:   k.topic,
		GroupID: key,
	})

	ctx, cancel := context.WithCancel(context.Background())
	k.lock.Lock()
	k.cancels = append(k.cancels, cancel)
	k.lock.Unlock()

	go func() {
		defer reader.Close()

		for {
			message, err := reader.ReadMessage(ctx)
			if err != nil {
				return
			}
			_ = notify(message.Value)
		}
	}()
}

func (k *kafkaMQ) Shutdown() bool {
	k.lock.Lock()
	defer k.lock.Unlock()

	for _, cancel := range k.cancels {
		cancel()
	}
	return k.writer.Close() == nil
}
