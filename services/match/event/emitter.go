package event

import (
	"encoding/json"
	"log"

	"hearth/pkg/mq"

	eventtypes "hearth/pkg/types/eventtype"
)

type Publisher interface {
	PublishMessage(exchange, routingKey string, body []byte) error
}

type Emitter struct {
	mqClient Publisher
}

func NewEmitter(mqClient Publisher) *Emitter {
	return &Emitter{mqClient: mqClient}
}

// PublishMatchEvent event_type 을 routing key 로 app_topic 에 발행
func (e *Emitter) PublishMatchEvent(payload eventtypes.EventPayload) error {
	eventBytes, err := json.Marshal(payload)
	if err != nil {
		log.Printf("❌ Failed to marshal %s event: %v", payload.EventType, err)
		return err
	}

	err = e.mqClient.PublishMessage(
		mq.ExchangeAppTopic, // Exchange Name (Topic 타입)
		payload.EventType,   // Routing Key
		eventBytes,
	)
	if err != nil {
		log.Printf("❌ Failed to publish %s event: %v", payload.EventType, err)
		return err
	}

	return nil
}
