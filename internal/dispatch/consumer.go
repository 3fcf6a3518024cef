package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"permission-bot/internal/config"
)

const (
	dispatchTopic = "chat-dispatch"
	consumerGroup = "permission-bot"
)

// RunConsumer reads dispatch events from the gateway's topic and feeds them
// through the registry until the context is cancelled. Handler errors are
// logged and the offending event is committed anyway; there are no retries.
func RunConsumer(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.KafkaConfig, registry *Registry) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		GroupID:     consumerGroup,
		Topic:       dispatchTopic,
		ErrorLogger: zap.NewStdLog(zap.L()),
	})

	logger.Infow("listening for dispatch events", "topic", dispatchTopic)

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if err := reader.Close(); err != nil {
				logger.Errorw("failed to close kafka reader", "error", err)
			}
		}()

		for {
			m, err := reader.FetchMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				logger.Errorw("failed to fetch dispatch event", "error", err)
				return
			}

			var ev Event
			if err := json.Unmarshal(m.Value, &ev); err != nil {
				logger.Warnw("discarding malformed dispatch event", "error", err)
			} else if err := registry.Dispatch(ctx, &ev); err != nil {
				logger.Errorw("failed to handle dispatch event",
					"thread", ev.ThreadID, "user", ev.SenderID, "error", err)
			}

			if err := reader.CommitMessages(ctx, m); err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				logger.Errorw("failed to commit dispatch event", "error", err)
			}
		}
	}()
}
