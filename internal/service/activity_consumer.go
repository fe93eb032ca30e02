package service

import (
	"context"
	"encoding/json"

	"exec-workspace-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IActivityConsumer interface {
	Consume(ctx context.Context) error
}

// activityConsumer drains the activity topic and records every event in
// the structured log, giving the workspace a queryable activity trail.
type activityConsumer struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger
}

func NewActivityConsumer(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IActivityConsumer {
	return &activityConsumer{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
	}
}

func (c *activityConsumer) Consume(ctx context.Context) error {
	messages, err := c.pubSub.Subscribe(ctx, c.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			c.processMessage(msg)
		}
	}()

	return nil
}

func (c *activityConsumer) processMessage(msg *message.Message) {
	var payload activityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		c.log.Warn("activity", "failed to unmarshal event", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack malformed messages to prevent redelivery loops
		msg.Ack()
		return
	}

	c.log.Info("activity", payload.Type, payload.Data)
	msg.Ack()
}
