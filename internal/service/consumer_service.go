package service

import (
	"context"
	"encoding/json"

	"notemark-be/internal/apperror"
	"notemark-be/internal/dto"
	"notemark-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService warms the render cache: every note mutation publishes a
// NOTE_CONTENT_CHANGED message, and the consumer pre-renders the new content
// so the next render request is a cache hit.
type consumerService struct {
	pubSub        *gochannel.GoChannel
	topicName     string
	renderService IRenderService
	log           logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	renderService IRenderService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:        pubSub,
		topicName:     topicName,
		renderService: renderService,
		log:           log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishRenderNoteMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		// Ack invalid messages to prevent infinite retry
		msg.Ack()
		return
	}

	if err := cs.renderService.RenderToCache(ctx, payload.NoteId); err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			// Note deleted before the message was handled. Ack.
			msg.Ack()
			return
		}
		cs.log.Error("consumer", "failed to warm render cache", map[string]interface{}{
			"note_id": payload.NoteId,
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
