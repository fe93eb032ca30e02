package service

import (
	"context"
	"encoding/json"
	"time"

	"exec-workspace-be/internal/pkg/logger"
	"exec-workspace-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IActivityPublisher emits workspace activity events. Publishing is
// auxiliary: a failure is logged and never fails the originating request.
type IActivityPublisher interface {
	Publish(ctx context.Context, event events.Event)
}

type activityMessage struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurredAt"`
}

type activityPublisher struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger
}

func NewActivityPublisher(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IActivityPublisher {
	return &activityPublisher{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
	}
}

func (p *activityPublisher) Publish(ctx context.Context, event events.Event) {
	payload, err := json.Marshal(activityMessage{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		p.log.Warn("activity", "failed to marshal event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	if err := p.pubSub.Publish(p.topicName, msg); err != nil {
		p.log.Warn("activity", "failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}
