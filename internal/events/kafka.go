package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/grinval/gs-login-core/internal/logger"
)

const (
	TopicAccountCreated = "account.created"
	TopicServerStatus   = "gameserver.status"
)

// AccountCreatedEvent is emitted after a successful account creation.
type AccountCreatedEvent struct {
	PlayerID  int64  `json:"player_id"`
	Username  string `json:"username"`
	Country   string `json:"country"`
	Timestamp int64  `json:"timestamp"`
}

// ServerStatusEvent is emitted whenever a server changes advertised state.
type ServerStatusEvent struct {
	Address   string `json:"address"`
	Port      int    `json:"port"`
	Online    bool   `json:"online"`
	Timestamp int64  `json:"timestamp"`
}

// Publisher publishes domain events to Kafka. With an empty broker list the
// publisher is disabled and every publish is a no-op.
type Publisher struct {
	writer  *kafka.Writer
	enabled bool
}

func NewPublisher(brokers string) *Publisher {
	if brokers == "" {
		logger.Log.Info("event publisher disabled")
		return &Publisher{}
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Log.Infow("event publisher initialized", "brokers", brokers)
	return &Publisher{writer: w, enabled: true}
}

// AccountCreated publishes an account-created event. Best effort: failures
// are logged and never surfaced to the account operation that emitted them.
func (p *Publisher) AccountCreated(ctx context.Context, playerID int64, username, country string) {
	p.publish(ctx, TopicAccountCreated, AccountCreatedEvent{
		PlayerID:  playerID,
		Username:  username,
		Country:   country,
		Timestamp: time.Now().Unix(),
	})
}

// ServerStatus publishes a server state change. Best effort.
func (p *Publisher) ServerStatus(ctx context.Context, address string, port int, online bool) {
	p.publish(ctx, TopicServerStatus, ServerStatusEvent{
		Address:   address,
		Port:      port,
		Online:    online,
		Timestamp: time.Now().Unix(),
	})
}

func (p *Publisher) publish(ctx context.Context, topic string, payload any) {
	if p == nil || !p.enabled {
		return
	}

	value, err := json.Marshal(payload)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "topic", topic, "error", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(uuid.New().String()),
		Value: value,
	})
	if err != nil {
		logger.Log.Errorw("failed to publish event", "topic", topic, "error", err)
	}
}

// Close shuts down the underlying writer.
func (p *Publisher) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
