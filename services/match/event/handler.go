package event

import (
	"context"
	"encoding/json"
	"log"

	"hearth/pkg/dto"

	eventtypes "hearth/pkg/types/eventtype"
)

type DailyMatchGenerator interface {
	GenerateDailyMatches(ctx context.Context) (dto.MatchRunReport, error)
}

type EventHandler struct {
	generator DailyMatchGenerator
}

func NewEventHandler(generator DailyMatchGenerator) *EventHandler {
	return &EventHandler{generator: generator}
}

// match.generate 이벤트 1건당 생성 1회
func (h *EventHandler) HandleGenerateEvent(body json.RawMessage) {
	var event eventtypes.MatchGenerateEvent
	if len(body) > 0 {
		if err := json.Unmarshal(body, &event); err != nil {
			log.Printf("failed to unmarshal match.generate event: %v", err)
		}
	}

	report, err := h.generator.GenerateDailyMatches(context.Background())
	if err != nil {
		log.Printf("❌ Daily match generation requested by %q failed: %v", event.RequestedBy, err)
		return
	}

	log.Printf("✅ Daily match generation requested by %q: %d created, %d users processed",
		event.RequestedBy, report.MatchesCreated, report.UsersProcessed)
}
