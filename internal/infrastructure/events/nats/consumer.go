package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	videoapp "github.com/streamhaven/catalog/internal/application/video"
	"github.com/streamhaven/catalog/internal/domain/video"
)

// encoderResult is the message the media encoder publishes when it has
// finished (or failed) processing one media.
type encoderResult struct {
	VideoID     string `json:"video_id"`
	MediaID     string `json:"media_id"`
	Status      string `json:"status"`
	EncodedPath string `json:"encoded_path,omitempty"`
}

// EncoderResultConsumer listens for encoder outcomes and applies them to
// the owning video aggregate. Instances sharing a queue group split the
// subject between them.
type EncoderResultConsumer struct {
	client *Client
	videos *videoapp.Service
	logger *zap.Logger
	sub    *nats.Subscription
}

// NewEncoderResultConsumer creates a consumer for encoder results.
func NewEncoderResultConsumer(client *Client, videos *videoapp.Service, logger *zap.Logger) *EncoderResultConsumer {
	return &EncoderResultConsumer{
		client: client,
		videos: videos,
		logger: logger.Named("encoder-results"),
	}
}

// Start subscribes to the encoder result subject. Messages that cannot
// be decoded are logged and dropped, they would never become valid on
// redelivery.
func (c *EncoderResultConsumer) Start(ctx context.Context) error {
	cfg := c.client.config.NATS

	sub, err := c.client.Conn().QueueSubscribe(cfg.EncoderResultSubject, cfg.EncoderResultQueue, func(msg *nats.Msg) {
		c.handle(ctx, msg)
	})
	if err != nil {
		return err
	}
	c.sub = sub

	c.logger.Info("listening for encoder results",
		zap.String("subject", cfg.EncoderResultSubject),
		zap.String("queue", cfg.EncoderResultQueue),
	)
	return nil
}

// Stop unsubscribes from the encoder result subject.
func (c *EncoderResultConsumer) Stop() error {
	if c.sub == nil {
		return nil
	}
	return c.sub.Unsubscribe()
}

func (c *EncoderResultConsumer) handle(ctx context.Context, msg *nats.Msg) {
	var result encoderResult
	if err := json.Unmarshal(msg.Data, &result); err != nil {
		c.logger.Error("failed to decode encoder result", zap.Error(err))
		return
	}

	err := c.videos.UpdateMediaStatus(ctx, videoapp.UpdateMediaStatusCommand{
		VideoID:     result.VideoID,
		MediaID:     result.MediaID,
		Status:      video.MediaStatus(result.Status),
		EncodedPath: result.EncodedPath,
	})
	if err != nil {
		c.logger.Error("failed to apply encoder result",
			zap.Error(err),
			zap.String("video_id", result.VideoID),
			zap.String("media_id", result.MediaID),
			zap.String("status", result.Status),
		)
		return
	}

	c.logger.Info("encoder result applied",
		zap.String("video_id", result.VideoID),
		zap.String("media_id", result.MediaID),
		zap.String("status", result.Status),
	)
}
