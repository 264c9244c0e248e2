package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptWithExpertName(t *testing.T) {
	prompt := BuildPrompt("How do I treat rice blast?", "Dr. Nimal Perera")

	assert.Contains(t, prompt, "Dr. Nimal Perera")
	assert.Contains(t, prompt, "How do I treat rice blast?")
	assert.Contains(t, prompt, "Sri Lanka")
}

func TestBuildPromptWithoutExpertName(t *testing.T) {
	prompt := BuildPrompt("How do I treat rice blast?", "")

	assert.Contains(t, prompt, "an experienced agricultural advisor")
	assert.Contains(t, prompt, "How do I treat rice blast?")
}
