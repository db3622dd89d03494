package stickergen

import (
	"context"
	"time"
)

// ImageGenerator is the core interface for sticker image providers.
// Implement this interface to add support for new models or providers.
//
// The first model returned by Models() is considered the default model.
type ImageGenerator interface {
	// Generate renders a sticker for req. It makes at most one upstream call and
	// returns either an image or an error wrapping one of the generation sentinels.
	Generate(ctx context.Context, req GenerationRequest, genConfig *GenerateConfig) (*ImageRef, error)

	// Models returns the model definitions supported by this provider.
	// The first model in the list is the default.
	Models() []ModelInfo

	// Close releases any resources held by the generator.
	Close() error
}

// Recorder observes generation outcomes, typically for metrics.
type Recorder interface {
	// ObserveGeneration is called once per Studio.Generate call. outcome is
	// the value of Outcome(err).
	ObserveGeneration(style Style, outcome string, duration time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveGeneration(Style, string, time.Duration) {}
