package stickergen

// Model represents a specific image generation model.
type Model string

// AspectRatio represents the aspect ratio for generated images.
type AspectRatio string

const (
	// AspectRatioSquare is the only ratio stickers are generated at.
	AspectRatioSquare AspectRatio = "1:1"
	AspectRatio4x3    AspectRatio = "4:3"
	AspectRatio3x4    AspectRatio = "3:4"
)

// GenerateConfig holds configuration options for a single generation.
type GenerateConfig struct {
	// Model to use for generation (if empty, the provider's default)
	Model Model

	// AspectRatio of the output image (empty means square)
	AspectRatio AspectRatio

	// Metadata to attach to log lines
	Metadata map[string]string
}

// WithModel returns a copy of the config with the specified model.
func (c *GenerateConfig) WithModel(model Model) *GenerateConfig {
	if c == nil {
		cfg := DefaultConfig()
		cfg.Model = model
		return cfg
	}
	cX := *c
	cX.Model = model
	return &cX
}

// DefaultConfig returns a GenerateConfig for square stickers on the provider's default model.
func DefaultConfig() *GenerateConfig {
	return &GenerateConfig{
		AspectRatio: AspectRatioSquare,
	}
}

// String returns the string representation for API calls.
func (a AspectRatio) String() string {
	return string(a)
}

// String returns the model identifier.
func (m Model) String() string {
	return string(m)
}
