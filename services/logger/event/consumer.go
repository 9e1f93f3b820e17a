package event

import (
	"fmt"
	"log"

	"hearth/pkg/mq"

	eventtypes "hearth/pkg/types/eventtype"
)

type Consumer struct {
	mqClient     *mq.RabbitMQ
	eventHandler *EventHandler
}

func NewConsumer(mqClient *mq.RabbitMQ, eventHandler *EventHandler) *Consumer {
	return &Consumer{
		mqClient:     mqClient,
		eventHandler: eventHandler,
	}
}

func (c *Consumer) StartListening() error {
	// Exchange 설정 (fanout)
	if err := c.mqClient.DeclareExchange(mq.ExchangeLog, mq.ExchangeTypeFanout); err != nil {
		return fmt.Errorf("declare exchange %s: %w", mq.ExchangeLog, err)
	}

	// Queue 생성 및 바인딩
	queue, err := c.mqClient.DeclareQueue(mq.QueueLog, mq.ExchangeLog, []string{})
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", mq.QueueLog, err)
	}

	handlers := mq.EventHandlerMap{
		eventtypes.EventTypeLog: c.eventHandler.HandleLogEvent,
	}
	if err := c.mqClient.ConsumeMessages(queue.Name, handlers); err != nil {
		return fmt.Errorf("consume %s: %w", queue.Name, err)
	}

	log.Println("✅ Logger Service Consumer Listening...")
	return nil
}
