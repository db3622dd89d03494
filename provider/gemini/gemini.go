// Package gemini provides a sticker ImageGenerator using Google's Gemini API.
//
// This provider uses the Gemini API backend via the official Go SDK:
// https://github.com/googleapis/go-genai
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/mhpenta/stickergen"
	"google.golang.org/genai"
)

// Model name constants - the actual API model names.
const (
	// APIModelNanoBanana1 is the actual API name for Gemini 2.5 Flash Image
	APIModelNanoBanana1 = "gemini-2.5-flash-image"

	// APIModelNanoBanana2 is the actual API name for Gemini 3 Pro Image
	APIModelNanoBanana2 = "gemini-3-pro-image-preview"
)

// Response modalities requested from the model. TEXT is kept so a refusal
// comes back as commentary rather than an empty response.
var responseModalities = []string{"TEXT", "IMAGE"}

// contentGenerator is the subset of genai.Models used by the generator.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements stickergen.ImageGenerator using Google's Gemini API.
type GeminiGenerator struct {
	models       contentGenerator // nil when no API key was configured
	apiKey       string
	defaultModel stickergen.Model
}

// Ensure GeminiGenerator implements the interface.
var _ stickergen.ImageGenerator = (*GeminiGenerator)(nil)

// New creates a GeminiGenerator from a ProviderConfig.
//
// An empty API key is not an error here: no client is created and every
// Generate call fails with stickergen.ErrMissingCredential without contacting
// the API.
func New(ctx context.Context, config *stickergen.ProviderConfig) (*GeminiGenerator, error) {
	if config == nil {
		config = &stickergen.ProviderConfig{}
	}

	g := &GeminiGenerator{defaultModel: config.DefaultModel}

	apiKey := strings.TrimSpace(config.APIKey)
	if apiKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	g.models = client.Models
	g.apiKey = apiKey

	return g, nil
}

// NewWithAPIKey creates a generator with an API key for Gemini API.
func NewWithAPIKey(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	return New(ctx, &stickergen.ProviderConfig{
		Provider: stickergen.ProviderGeminiAPI,
		APIKey:   apiKey,
	})
}

// Configured reports whether the generator holds a credential.
func (g *GeminiGenerator) Configured() bool {
	return g.apiKey != "" && g.models != nil
}

// Generate renders a die-cut sticker for req with a single API call.
func (g *GeminiGenerator) Generate(ctx context.Context, req stickergen.GenerationRequest, config *stickergen.GenerateConfig) (*stickergen.ImageRef, error) {
	if config == nil {
		config = stickergen.DefaultConfig()
	}

	modelName := g.resolveModel(config)

	if !g.Configured() {
		return nil, stickergen.NewGenerationError(stickergen.ErrMissingCredential, modelName)
	}

	if err := stickergen.ValidateRequest(req); err != nil {
		return nil, err
	}

	contents := []*genai.Content{
		genai.NewContentFromText(stickergen.StickerPrompt(req.Prompt, req.Style), genai.RoleUser),
	}

	result, err := g.models.GenerateContent(ctx, modelName, contents, buildGenerateContentConfig(config))
	if err != nil {
		return nil, &stickergen.GenerationError{
			Reason: stickergen.ErrUpstreamTransport,
			Model:  modelName,
			Err:    err,
		}
	}

	return extractImage(result, modelName)
}

// Models returns the model definitions supported by this provider.
// The first model (NanoBanana1) is the default.
func (g *GeminiGenerator) Models() []stickergen.ModelInfo {
	return []stickergen.ModelInfo{
		NanoBanana1Info,
		NanoBanana2Info,
	}
}

// Close releases any resources held by the generator.
func (g *GeminiGenerator) Close() error {
	// The genai.Client doesn't require explicit closing in the current SDK
	return nil
}

// resolveModel determines which API model name to use: the request config,
// then the provider default, then the first model in the list.
func (g *GeminiGenerator) resolveModel(config *stickergen.GenerateConfig) string {
	if config != nil && config.Model != "" {
		return string(config.Model)
	}
	if g.defaultModel != "" {
		return string(g.defaultModel)
	}
	models := g.Models()
	if len(models) == 0 {
		return APIModelNanoBanana1
	}
	return models[0].APIModelName
}

// buildGenerateContentConfig converts our config to Gemini's GenerateContentConfig format.
func buildGenerateContentConfig(config *stickergen.GenerateConfig) *genai.GenerateContentConfig {
	genConfig := &genai.GenerateContentConfig{
		ResponseModalities: responseModalities,
	}

	aspect := config.AspectRatio
	if aspect == "" {
		aspect = stickergen.AspectRatioSquare
	}
	genConfig.ImageConfig = &genai.ImageConfig{
		AspectRatio: aspect.String(),
	}

	return genConfig
}
