package event

import (
	"log"

	"hearth/pkg/mq"

	eventtypes "hearth/pkg/types/eventtype"
)

type Consumer struct {
	mqClient     *mq.RabbitMQ
	eventHandler *EventHandler
}

func NewConsumer(mqClient *mq.RabbitMQ, generator DailyMatchGenerator) *Consumer {
	return &Consumer{
		mqClient:     mqClient,
		eventHandler: NewEventHandler(generator),
	}
}

func (c *Consumer) StartListening() error {
	// Exchange 설정
	err := c.mqClient.DeclareExchange(mq.ExchangeAppTopic, mq.ExchangeTypeTopic)
	if err != nil {
		log.Printf("❌ Failed to declare exchange %s: %v", mq.ExchangeAppTopic, err)
		return err
	}

	// Queue 생성 및 바인딩
	queue, err := c.mqClient.DeclareQueue(mq.QueueMatch, mq.ExchangeAppTopic, []string{mq.RoutingKeyMatchGenerate})
	if err != nil {
		log.Printf("❌ Failed to declare queue %s for %s: %v", mq.QueueMatch, mq.ExchangeAppTopic, err)
		return err
	}

	// 이벤트 핸들러 등록
	handlers := mq.EventHandlerMap{
		eventtypes.EventTypeMatchGenerate: c.eventHandler.HandleGenerateEvent,
	}

	// 메시지 소비 시작
	if err := c.mqClient.ConsumeMessages(queue.Name, handlers); err != nil {
		log.Printf("❌ Failed to consume %s: %v", queue.Name, err)
		return err
	}

	log.Println("✅ RabbitMQ Consumer Listening...")
	return nil
}
