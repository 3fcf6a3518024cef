package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"permission-bot/internal/config"
)

const outboundTopic = "chat-outbound"

// outboundMessage is the wire form the gateway consumes to deliver a message
// into a thread.
type outboundMessage struct {
	ThreadID string    `json:"threadId"`
	Message  *Message  `json:"message"`
	SentAt   time.Time `json:"sentAt"`
}

type kafkaMessenger struct {
	logger *zap.SugaredLogger
	w      *kafka.Writer
}

// NewKafkaMessenger publishes outbound messages to the gateway's topic. The
// writer is synchronous: a confirmation that cannot be published is an error
// the command handler gets to see.
func NewKafkaMessenger(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg config.KafkaConfig) Messenger {
	w := &kafka.Writer{
		Addr:        kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:       outboundTopic,
		Balancer:    &kafka.LeastBytes{},
		ErrorLogger: zap.NewStdLog(zap.L()),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down outbound kafka writer")
		if err := w.Close(); err != nil {
			logger.Errorw("failed to close kafka writer", "error", err)
		}
	}()

	return &kafkaMessenger{
		logger: logger,
		w:      w,
	}
}

func (k *kafkaMessenger) SendMessage(ctx context.Context, threadID string, msg *Message) error {
	bytes, err := json.Marshal(outboundMessage{
		ThreadID: threadID,
		Message:  msg,
		SentAt:   time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := k.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(threadID),
		Value: bytes,
	}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
