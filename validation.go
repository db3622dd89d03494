package stickergen

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validation errors
var (
	ErrEmptyPrompt     = errors.New("prompt cannot be empty")
	ErrInvalidStyle    = errors.New("unsupported sticker style")
	ErrEmptyImageData  = errors.New("image data cannot be empty")
	ErrInvalidMIMEType = errors.New("invalid or unsupported MIME type")
	ErrImageTooLarge   = errors.New("image data exceeds maximum size")
	ErrInvalidSticker  = errors.New("invalid sticker")
)

// MaxImageSize is the maximum allowed image size in bytes (20MB)
const MaxImageSize = 20 * 1024 * 1024

// ValidMIMETypes contains the supported image MIME types
var ValidMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// GenerationRequest is a single sticker generation request. It is not retained.
type GenerationRequest struct {
	Prompt string `validate:"required,notblank"`
	Style  Style  `validate:"sticker_style"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("sticker_style", func(fl validator.FieldLevel) bool {
			return Style(fl.Field().String()).Valid()
		})
		validate = v
	})
	return validate
}

// ValidatePrompt validates a text prompt. Whitespace-only prompts are rejected.
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}
	return nil
}

// ValidateRequest validates a generation request.
func ValidateRequest(req GenerationRequest) error {
	err := structValidator().Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if fe.Field() == "Style" {
			return fmt.Errorf("%w: %q", ErrInvalidStyle, req.Style)
		}
	}
	return ErrEmptyPrompt
}

// ValidateSticker checks the fields every sticker must carry.
func ValidateSticker(s Sticker) error {
	if err := structValidator().Struct(s); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidSticker, s.ID, err)
	}
	return nil
}

// ValidateImage validates decoded image data.
func ValidateImage(img ImageRef) error {
	if len(img.Data) == 0 {
		return ErrEmptyImageData
	}
	if len(img.Data) > MaxImageSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrImageTooLarge, len(img.Data), MaxImageSize)
	}
	if !ValidMIMETypes[img.MIMEType] {
		return fmt.Errorf("%w: %s", ErrInvalidMIMEType, img.MIMEType)
	}
	return nil
}
