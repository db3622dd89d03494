package stickergen

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// MockImageGenerator is a mock implementation of ImageGenerator.
type MockImageGenerator struct {
	GenerateFunc func(ctx context.Context, req GenerationRequest, config *GenerateConfig) (*ImageRef, error)
	ModelsFunc   func() []ModelInfo
	CloseFunc    func() error

	calls atomic.Int32
}

func (m *MockImageGenerator) Generate(ctx context.Context, req GenerationRequest, config *GenerateConfig) (*ImageRef, error) {
	m.calls.Add(1)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req, config)
	}
	return NewImageRef("image/png", []byte("A")), nil
}

func (m *MockImageGenerator) Models() []ModelInfo {
	if m.ModelsFunc != nil {
		return m.ModelsFunc()
	}
	return []ModelInfo{}
}

func (m *MockImageGenerator) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Calls returns how many times Generate was invoked.
func (m *MockImageGenerator) Calls() int {
	return int(m.calls.Load())
}

// recordedOutcome is one ObserveGeneration call.
type recordedOutcome struct {
	style   Style
	outcome string
}

type mockRecorder struct {
	mu       sync.Mutex
	observed []recordedOutcome
}

func (r *mockRecorder) ObserveGeneration(style Style, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observed = append(r.observed, recordedOutcome{style: style, outcome: outcome})
}

func (r *mockRecorder) outcomes() []recordedOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedOutcome(nil), r.observed...)
}
