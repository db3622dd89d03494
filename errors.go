package stickergen

import (
	"errors"
	"fmt"

	"github.com/mhpenta/stickergen/sharelink"
)

// Upstream failures. Each is terminal for the generation that produced it.
var (
	// ErrMissingCredential is returned without contacting the provider when no API key is configured.
	ErrMissingCredential = errors.New("API key is missing, check your configuration")

	ErrNoCandidates      = errors.New("no candidates in response")
	ErrNoContent         = errors.New("no content in response candidate")
	ErrNoParts           = errors.New("no parts in response content")
	ErrTextRefusal       = errors.New("model returned text instead of image")
	ErrNoImageData       = errors.New("no image data found in the response")
	ErrUpstreamTransport = errors.New("image generation request failed")
)

// ErrInvalidShareLink is returned when a drive link carries no file identifier.
var ErrInvalidShareLink = sharelink.ErrInvalidLink

// Workflow errors.
var (
	ErrGenerationInProgress = errors.New("a sticker is already being generated")
	ErrDuplicateID          = errors.New("duplicate sticker id")
	ErrNotDataURI           = errors.New("sticker url is not a data URI")

	// ErrStorageNotConfigured is returned when storage operations are attempted
	// without a configured storage backend.
	ErrStorageNotConfigured = errors.New("storage not configured")
)

// GenerationError describes a failed generation. Reason is one of the sentinel
// errors above, so errors.Is(err, ErrNoParts) works on the wrapped value.
type GenerationError struct {
	Reason error
	Model  string
	Text   string // model commentary, set for ErrTextRefusal
	Err    error  // underlying transport error, if any
}

func (e *GenerationError) Error() string {
	switch {
	case e.Text != "":
		return fmt.Sprintf("%s: %s", e.Reason, e.Text)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	default:
		return e.Reason.Error()
	}
}

func (e *GenerationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

// NewGenerationError builds a GenerationError for model.
func NewGenerationError(reason error, model string) *GenerationError {
	return &GenerationError{Reason: reason, Model: model}
}

// IsGenerationError checks if an error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// Outcome labels for logs and metrics.
const (
	OutcomeSuccess           = "success"
	OutcomeMissingCredential = "missing_credential"
	OutcomeNoCandidates      = "no_candidates"
	OutcomeNoContent         = "no_content"
	OutcomeNoParts           = "no_parts"
	OutcomeTextRefusal       = "text_refusal"
	OutcomeNoImage           = "no_image"
	OutcomeTransport         = "transport"
	OutcomeInvalidInput      = "invalid_input"
	OutcomeBusy              = "busy"
	OutcomeUnknown           = "unknown"
)

var outcomeByReason = []struct {
	reason error
	label  string
}{
	{ErrMissingCredential, OutcomeMissingCredential},
	{ErrNoCandidates, OutcomeNoCandidates},
	{ErrNoContent, OutcomeNoContent},
	{ErrNoParts, OutcomeNoParts},
	{ErrTextRefusal, OutcomeTextRefusal},
	{ErrNoImageData, OutcomeNoImage},
	{ErrUpstreamTransport, OutcomeTransport},
	{ErrEmptyPrompt, OutcomeInvalidInput},
	{ErrInvalidStyle, OutcomeInvalidInput},
	{ErrGenerationInProgress, OutcomeBusy},
}

// Outcome maps err to a stable label. A nil error is OutcomeSuccess.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	for _, o := range outcomeByReason {
		if errors.Is(err, o.reason) {
			return o.label
		}
	}
	return OutcomeUnknown
}
