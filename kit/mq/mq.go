package mq

import (
	"context"
)

type Notify func(message []byte) error

type Message interface {
	GetKey() string
	Marshal() ([]byte, error)
}

// MQTopic is a single named topic. This service only produces; the
// subscribe side exists for in-process consumers and tests.
type MQTopic interface {
	Produce(ctx context.Context, message Message) error
	Subscribe(key string, notify Notify)
	Shutdown() bool
}
