package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"permission-bot/internal/config"
)

const topic = "permission-bot"

// PermissionsUpdateMessage announces an applied grant or revoke to other
// services listening on the permission topic.
type PermissionsUpdateMessage struct {
	EventID    string     `json:"eventId"`
	ThreadID   string     `json:"threadId"`
	UserID     string     `json:"userId"`
	Commands   []string   `json:"commands"`
	ChangeType ChangeType `json:"changeType"`
	Timestamp  time.Time  `json:"timestamp"`
}

type kafkaNotifier struct {
	logger *zap.SugaredLogger
	w      *kafka.Writer
}

func NewKafkaNotifier(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg config.KafkaConfig) Notifier {
	w := &kafka.Writer{
		Addr:        kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:       topic,
		Async:       true,
		Balancer:    &kafka.LeastBytes{},
		ErrorLogger: zap.NewStdLog(zap.L()),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down kafka writer")
		if err := w.Close(); err != nil {
			logger.Errorw("failed to close kafka writer", "error", err)
		}
	}()

	return &kafkaNotifier{
		logger: logger,
		w:      w,
	}
}

func (k *kafkaNotifier) PermissionsUpdate(ctx context.Context, threadID string, userID string, commands []string, changeType ChangeType) error {
	msg := PermissionsUpdateMessage{
		EventID:    uuid.New().String(),
		ThreadID:   threadID,
		UserID:     userID,
		Commands:   commands,
		ChangeType: changeType,
		Timestamp:  time.Now().UTC(),
	}

	bytes, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := k.w.WriteMessages(ctx, kafka.Message{
		Key:     []byte(threadID),
		Value:   bytes,
		Headers: []kafka.Header{{Key: "X-Change-Type", Value: []byte(changeType)}},
	}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
