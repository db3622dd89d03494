package stickergen

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"
)

// Studio runs the sticker workflow on top of an ImageGenerator: it validates
// the request, allows one generation at a time, and records each new sticker
// in the session.
type Studio struct {
	generator ImageGenerator

	// Session receiving generated stickers
	session *Session

	// Config passed to the generator (square aspect ratio by default)
	genConfig *GenerateConfig

	// Logger for structured logging
	logger *slog.Logger

	recorder Recorder

	now func() time.Time

	inFlight atomic.Bool
}

// NewStudio creates a Studio around gen.
//
// Example:
//
//	gen, err := gemini.NewWithAPIKey(ctx, apiKey)
//	if err != nil {
//	    return err
//	}
//	studio := stickergen.NewStudio(gen,
//	    stickergen.WithLogger(slog.Default()),
//	)
//	sticker, err := studio.Generate(ctx, "a happy corgi eating pizza", stickergen.StyleCute)
func NewStudio(gen ImageGenerator, opts ...StudioOption) *Studio {
	s := &Studio{
		generator: gen,
		session:   NewSession(),
		genConfig: DefaultConfig(),
		logger:    slog.Default(),
		recorder:  nopRecorder{},
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Generate creates a sticker from prompt in the given style and adds it to the
// session. While one generation is outstanding, further calls fail with
// ErrGenerationInProgress.
func (s *Studio) Generate(ctx context.Context, prompt string, style Style) (*Sticker, error) {
	start := time.Now()
	req := GenerationRequest{Prompt: prompt, Style: style}

	sticker, err := s.generate(ctx, req)
	duration := time.Since(start)
	outcome := Outcome(err)

	s.recorder.ObserveGeneration(style, outcome, duration)

	logger := s.logger
	if len(s.genConfig.Metadata) > 0 {
		logger = logger.With(metadataAttrs(s.genConfig.Metadata)...)
	}

	if err != nil {
		attrs := []any{
			"style", style.String(),
			"outcome", outcome,
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		}
		var genErr *GenerationError
		if errors.As(err, &genErr) && genErr.Model != "" {
			attrs = append(attrs, "model", genErr.Model)
		}
		if outcome == OutcomeInvalidInput || outcome == OutcomeBusy {
			logger.Warn("sticker generation rejected", attrs...)
		} else {
			logger.Error("sticker generation failed", attrs...)
		}
		return nil, err
	}

	logger.Info("sticker generated",
		"id", sticker.ID,
		"style", style.String(),
		"duration_ms", duration.Milliseconds(),
		"url_length", len(sticker.URL),
	)
	return sticker, nil
}

func (s *Studio) generate(ctx context.Context, req GenerationRequest) (*Sticker, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrGenerationInProgress
	}
	defer s.inFlight.Store(false)

	s.logger.Debug("starting sticker generation",
		"style", req.Style.String(),
		"prompt_length", len(req.Prompt),
	)

	img, err := s.generator.Generate(ctx, req, s.genConfig)
	if err != nil {
		return nil, err
	}
	if img == nil || len(img.Data) == 0 {
		return nil, NewGenerationError(ErrNoImageData, s.genConfig.Model.String())
	}

	sticker := NewSticker(img.DataURI(), Caption(req.Prompt, req.Style), s.now())
	s.session.Add(sticker)
	return &sticker, nil
}

// Busy reports whether a generation is outstanding.
func (s *Studio) Busy() bool {
	return s.inFlight.Load()
}

// Session returns the session stickers are recorded in.
func (s *Studio) Session() *Session {
	return s.session
}

// Stickers returns the session's stickers, newest first.
func (s *Studio) Stickers() []Sticker {
	return s.session.List()
}

// Remove deletes a sticker from the session.
func (s *Studio) Remove(id string) bool {
	removed := s.session.Remove(id)
	if removed {
		s.logger.Debug("sticker removed", "id", id)
	}
	return removed
}

// Models returns the generator's model definitions.
func (s *Studio) Models() []ModelInfo {
	return s.generator.Models()
}

// Close releases the generator.
func (s *Studio) Close() error {
	return s.generator.Close()
}

func metadataAttrs(md map[string]string) []any {
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.String(k, md[k]))
	}
	return attrs
}
