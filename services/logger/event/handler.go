package event

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hearth/pkg/logger"
)

type LogInserter interface {
	InsertLog(ctx context.Context, baseLog logger.BaseLog) error
}

type EventHandler struct {
	logRepo LogInserter
	timeout time.Duration
}

func NewEventHandler(logRepo LogInserter, timeout time.Duration) *EventHandler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &EventHandler{
		logRepo: logRepo,
		timeout: timeout,
	}
}

// HandleLogEvent BaseLog 를 MongoDB 에 저장
func (e *EventHandler) HandleLogEvent(payload json.RawMessage) {
	var baseLog logger.BaseLog
	if err := json.Unmarshal(payload, &baseLog); err != nil {
		log.Printf("❌ Failed to unmarshal log event: %v", err)
		return
	}
	if baseLog.Timestamp.IsZero() {
		baseLog.Timestamp = time.Now()
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	if err := e.logRepo.InsertLog(ctx, baseLog); err != nil {
		log.Printf("❌ Failed to insert log: %v", err)
	}
}
