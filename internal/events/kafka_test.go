package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublisher_DisabledIsNoop(t *testing.T) {
	p := NewPublisher("")

	assert.NotPanics(t, func() {
		p.AccountCreated(context.Background(), 500000000, "alice", "US")
		p.ServerStatus(context.Background(), "10.0.0.1", 7000, true)
	})
	assert.NoError(t, p.Close())
}

func TestPublisher_NilReceiverIsNoop(t *testing.T) {
	var p *Publisher

	assert.NotPanics(t, func() {
		p.publish(context.Background(), TopicServerStatus, ServerStatusEvent{})
	})
}
