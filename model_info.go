package stickergen

// Provider represents a model provider/backend.
type Provider string

const (
	ProviderGeminiAPI Provider = "gemini"
)

// ProviderConfig configures a specific provider.
type ProviderConfig struct {
	// Provider type
	Provider Provider

	// APIKey for authentication. An empty key is not an error at construction
	// time; generation then fails with ErrMissingCredential.
	APIKey string

	// DefaultModel overrides the provider's default model (optional)
	DefaultModel Model
}

// ModelInfo contains metadata for a model.
type ModelInfo struct {
	// Identity
	Name         string   // Public model name (e.g., "nano-banana-1")
	Provider     Provider // Which provider serves this model
	APIModelName string   // Actual API name (e.g., "gemini-2.5-flash-image")

	// SupportedAspectRatios lists the ratios the model accepts
	SupportedAspectRatios []AspectRatio
}

// Supports reports whether the model accepts ratio.
func (m ModelInfo) Supports(ratio AspectRatio) bool {
	if ratio == "" {
		ratio = AspectRatioSquare
	}
	for _, r := range m.SupportedAspectRatios {
		if r == ratio {
			return true
		}
	}
	return false
}
