package pipeline

import (
	"context"

	"github.com/jtoivan/statnews/internal/llm"
)

// llmMorphology adapts an LLM provider to the morphology interface. Used
// behind the dictionary morphology for words outside its tables; any
// provider failure keeps the uninflected word.
type llmMorphology struct {
	ctx      context.Context
	provider llm.Provider
	language string
}

func (m *llmMorphology) Inflect(word, grammaticalCase string) (string, bool) {
	resp, err := m.provider.Inflect(m.ctx, llm.InflectRequest{
		Word:     word,
		Case:     grammaticalCase,
		Language: m.language,
	})
	if err != nil || resp == nil {
		return word, false
	}
	return resp.Inflected, true
}
