package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_PlainJSONUnchanged(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanJSONBlock(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, CleanJSONBlock("  {\"a\":1}\n"))
}

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"title\": \"Go\"}\n```"
	assert.Equal(t, `{"title": "Go"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"title\": \"Go\"}\n```"
	assert.Equal(t, `{"title": "Go"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_FenceWithoutNewline(t *testing.T) {
	assert.Equal(t, `{}`, CleanJSONBlock("```json{}```"))
}
