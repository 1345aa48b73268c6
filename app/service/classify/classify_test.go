package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStructured(t *testing.T) {
	tests := []struct {
		name   string
		answer string
	}{
		{
			name:   "fenced json block",
			answer: "```json\n{\"summary\":\"s\",\"suggestions\":[\"a\",\"b\"]}\n```",
		},
		{
			name:   "fenced block without tag",
			answer: "```\n{\"summary\":\"s\",\"suggestions\":[\"a\",\"b\"]}\n```",
		},
		{
			name:   "leading bare json marker",
			answer: "json\n{\"summary\":\"s\",\"suggestions\":[\"a\",\"b\"]}",
		},
		{
			name:   "bare object",
			answer: "{\"summary\":\"s\",\"suggestions\":[\"a\",\"b\"]}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := Classify(tt.answer)

			assert.True(t, reply.Structured)
			assert.Equal(t, "s", reply.Summary)
			assert.Equal(t, []string{"a", "b"}, reply.Suggestions)
		})
	}
}

func TestClassifyFiltersNonStringSuggestions(t *testing.T) {
	reply := Classify(`{"summary":"s","suggestions":["a",1,null,"b",{"x":1}]}`)

	assert.True(t, reply.Structured)
	assert.Equal(t, []string{"a", "b"}, reply.Suggestions)
}

func TestClassifyPlainFallback(t *testing.T) {
	tests := []struct {
		name   string
		answer string
	}{
		{name: "free text", answer: "hello"},
		{name: "broken json", answer: "{\"summary\":"},
		{name: "missing summary", answer: `{"suggestions":["a"]}`},
		{name: "summary wrong type", answer: `{"summary":1,"suggestions":["a"]}`},
		{name: "suggestions wrong type", answer: `{"summary":"s","suggestions":"a"}`},
		{name: "json array not object", answer: `["a","b"]`},
		{name: "fenced non-json", answer: "```\nnot json\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := Classify(tt.answer)

			assert.False(t, reply.Structured)
			// The original answer comes back untouched.
			assert.Equal(t, tt.answer, reply.Text)
		})
	}
}

func TestClassifyEmptySuggestions(t *testing.T) {
	reply := Classify(`{"summary":"s","suggestions":[]}`)

	assert.True(t, reply.Structured)
	assert.Empty(t, reply.Suggestions)
}
