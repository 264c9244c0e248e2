package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
)

func TestAskRequiresPrompt(t *testing.T) {
	advisor := &fakeAdvisor{answer: "unused"}
	uc := NewChatUseCase(advisor)

	for _, prompt := range []string{"", "   ", "\n\t"} {
		_, err := uc.Ask(context.Background(), prompt, "")
		require.Error(t, err)
		assert.Equal(t, 400, errors.StatusOf(err))
	}

	assert.Empty(t, advisor.prompt)
}

func TestAskWithoutAdvisorConfigured(t *testing.T) {
	uc := NewChatUseCase(nil)

	_, err := uc.Ask(context.Background(), "How do I treat rice blast?", "")
	require.Error(t, err)
	assert.Equal(t, 500, errors.StatusOf(err))
	assert.Contains(t, err.Error(), "API key is not configured")
}

func TestAskRelaysToAdvisor(t *testing.T) {
	advisor := &fakeAdvisor{answer: "Apply tricyclazole."}
	uc := NewChatUseCase(advisor)

	answer, err := uc.Ask(context.Background(), "How do I treat rice blast?", "Dr. Nimal Perera")
	require.NoError(t, err)

	assert.Equal(t, "Apply tricyclazole.", answer)
	assert.Equal(t, "How do I treat rice blast?", advisor.prompt)
	assert.Equal(t, "Dr. Nimal Perera", advisor.expertName)
}

func TestAskPropagatesAdvisorError(t *testing.T) {
	advisor := &fakeAdvisor{err: errors.Internal("Gemini API call failed.", nil)}
	uc := NewChatUseCase(advisor)

	_, err := uc.Ask(context.Background(), "How do I treat rice blast?", "")
	require.Error(t, err)
	assert.Equal(t, 500, errors.StatusOf(err))
}
