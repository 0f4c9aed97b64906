package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	mqKit "github.com/superj80820/user-profile-service/kit/mq"
)

type memoryMQ struct {
	lock        sync.Mutex
	subscribers map[string]mqKit.Notify
	isShutdown  bool
}

var _ mqKit.MQTopic = (*memoryMQ)(nil)

// CreateMemoryMQ delivers messages synchronously to all subscribers.
// Used for single-process runs and tests.
func CreateMemoryMQ() mqKit.MQTopic {
	return &memoryMQ{
		subscribers: make(map[string]mqKit.Notify),
	}
}

func (m *memoryMQ) Produce(ctx context.Context, message mqKit.Message) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.isShutdown {
		return errors.New("topic already shutdown")
	}

	payload, err := message.Marshal()
	if err != nil {
		return errors.Wrap(err, "marshal message failed")
	}
	for key, notify := range m.subscribers {
		if err := notify(payload); err != nil {
			return errors.Wrapf(err, "notify subscriber %s failed", key)
		}
	}
	return nil
}

func (m *memoryMQ) Subscribe(key string, notify mqKit.Notify) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.subscribers[key] = notify
}

func (m *memoryMQ) Shutdown() bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.isShutdown = true
	return true
}
