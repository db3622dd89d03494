package gemini

import "github.com/mhpenta/stickergen"

// stickerAspectRatios are the ratios offered for stickers. Both models accept more.
var stickerAspectRatios = []stickergen.AspectRatio{
	stickergen.AspectRatioSquare,
	stickergen.AspectRatio4x3,
	stickergen.AspectRatio3x4,
}

// NanoBanana1Info is the model info for Gemini 2.5 Flash Image (nano-banana-1),
// the default sticker model.
var NanoBanana1Info = stickergen.ModelInfo{
	Name:                  "nano-banana-1",
	Provider:              stickergen.ProviderGeminiAPI,
	APIModelName:          APIModelNanoBanana1,
	SupportedAspectRatios: stickerAspectRatios,
}

// NanoBanana2Info is the model info for Gemini 3 Pro Image (nano-banana-2).
var NanoBanana2Info = stickergen.ModelInfo{
	Name:                  "nano-banana-2",
	Provider:              stickergen.ProviderGeminiAPI,
	APIModelName:          APIModelNanoBanana2,
	SupportedAspectRatios: stickerAspectRatios,
}
