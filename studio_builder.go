package stickergen

import (
	"log/slog"
	"time"
)

// StudioOption configures the Studio.
type StudioOption func(*Studio)

// WithLogger sets a structured logger for the studio.
func WithLogger(logger *slog.Logger) StudioOption {
	return func(s *Studio) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder sets the recorder that observes generation outcomes.
func WithRecorder(recorder Recorder) StudioOption {
	return func(s *Studio) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// WithSession records generated stickers in an existing session.
func WithSession(session *Session) StudioOption {
	return func(s *Studio) {
		if session != nil {
			s.session = session
		}
	}
}

// WithGenerateConfig sets the config passed to the generator.
func WithGenerateConfig(cfg *GenerateConfig) StudioOption {
	return func(s *Studio) {
		if cfg != nil {
			s.genConfig = cfg
		}
	}
}

// WithDefaultModel selects the model used for generation.
func WithDefaultModel(model Model) StudioOption {
	return func(s *Studio) {
		s.genConfig = s.genConfig.WithModel(model)
	}
}

// WithClock overrides the clock used for sticker timestamps.
func WithClock(now func() time.Time) StudioOption {
	return func(s *Studio) {
		if now != nil {
			s.now = now
		}
	}
}
