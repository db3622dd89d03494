package gemini

import (
	"github.com/mhpenta/stickergen"
	"google.golang.org/genai"
)

// unwrapState carries a response through the unwrap steps.
type unwrapState struct {
	resp  *genai.GenerateContentResponse
	model string

	candidate *genai.Candidate
	parts     []*genai.Part
}

// unwrapStep inspects the response; it returns an image to finish early, an
// error to fail, or neither to hand off to the next step.
type unwrapStep func(*unwrapState) (*stickergen.ImageRef, error)

// unwrapSteps run in order. The first step to return an image or an error wins,
// so each failure names the outermost missing piece of the response.
var unwrapSteps = []unwrapStep{
	requireCandidates,
	requireContent,
	requireParts,
	firstInlineImage,
	textRefusal,
}

// extractImage pulls the sticker image out of a GenerateContent response.
func extractImage(resp *genai.GenerateContentResponse, model string) (*stickergen.ImageRef, error) {
	st := &unwrapState{resp: resp, model: model}
	for _, step := range unwrapSteps {
		img, err := step(st)
		if err != nil {
			return nil, err
		}
		if img != nil {
			return img, nil
		}
	}
	return nil, stickergen.NewGenerationError(stickergen.ErrNoImageData, model)
}

func requireCandidates(st *unwrapState) (*stickergen.ImageRef, error) {
	if st.resp == nil || len(st.resp.Candidates) == 0 || st.resp.Candidates[0] == nil {
		return nil, stickergen.NewGenerationError(stickergen.ErrNoCandidates, st.model)
	}
	st.candidate = st.resp.Candidates[0]
	return nil, nil
}

func requireContent(st *unwrapState) (*stickergen.ImageRef, error) {
	if st.candidate.Content == nil {
		return nil, stickergen.NewGenerationError(stickergen.ErrNoContent, st.model)
	}
	return nil, nil
}

func requireParts(st *unwrapState) (*stickergen.ImageRef, error) {
	if len(st.candidate.Content.Parts) == 0 {
		return nil, stickergen.NewGenerationError(stickergen.ErrNoParts, st.model)
	}
	st.parts = st.candidate.Content.Parts
	return nil, nil
}

func firstInlineImage(st *unwrapState) (*stickergen.ImageRef, error) {
	for _, part := range st.parts {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		return stickergen.NewImageRef(part.InlineData.MIMEType, part.InlineData.Data), nil
	}
	return nil, nil
}

func textRefusal(st *unwrapState) (*stickergen.ImageRef, error) {
	for _, part := range st.parts {
		if part == nil || part.Thought || part.Text == "" {
			continue
		}
		return nil, &stickergen.GenerationError{
			Reason: stickergen.ErrTextRefusal,
			Model:  st.model,
			Text:   part.Text,
		}
	}
	return nil, nil
}
