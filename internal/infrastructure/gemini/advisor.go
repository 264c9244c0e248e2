package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
)

// Advisor wraps the Gemini API behind the advisory prompt template.
type Advisor struct {
	client *genai.Client
	model  string
}

func NewAdvisor(ctx context.Context, apiKey, model string) (*Advisor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Advisor{
		client: client,
		model:  model,
	}, nil
}

func (a *Advisor) Close() error {
	return a.client.Close()
}

// BuildPrompt wraps the farmer's question in the fixed advisory instruction,
// speaking as the named expert when one is given.
func BuildPrompt(userPrompt, expertName string) string {
	persona := "an experienced agricultural advisor"
	if expertName != "" {
		persona = fmt.Sprintf("%s, an experienced agricultural advisor", expertName)
	}

	return fmt.Sprintf(
		"You are %s helping farmers in Sri Lanka protect their crops. "+
			"Give practical, safe and concise guidance. If a pesticide or chemical is involved, "+
			"remind the farmer to follow the label instructions.\n\nFarmer's question: %s",
		persona, userPrompt,
	)
}

func (a *Advisor) Advise(ctx context.Context, prompt, expertName string) (string, error) {
	model := a.client.GenerativeModel(a.model)

	resp, err := model.GenerateContent(ctx, genai.Text(BuildPrompt(prompt, expertName)))
	if err != nil {
		return "", errors.Internal("Gemini API call failed.", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.Internal("No valid text in Gemini response.", nil)
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.Internal("No valid text in Gemini response.", nil)
	}

	return string(text), nil
}
