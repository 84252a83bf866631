package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"vocalwork/src/pkg/log"
)

type fakeGenerator struct {
	text string
	err  error
}

func (g *fakeGenerator) GenerateText(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	return g.text, g.err
}

func TestGenerateOfferLetterPassesThrough(t *testing.T) {
	client := NewClient(&fakeGenerator{text: "# Offer\n\nWelcome aboard."}, nil, log.Log{})

	letter := client.GenerateOfferLetter(context.Background(), "John Doe", "Voice Actor")
	assert.Equal(t, "# Offer\n\nWelcome aboard.", letter)
}

func TestGenerateOfferLetterFallsBack(t *testing.T) {
	cases := map[string]TextGenerator{
		"transport error": &fakeGenerator{err: errors.New("timeout")},
		"empty response":  &fakeGenerator{text: ""},
		"no generator":    nil,
	}
	for name, generator := range cases {
		t.Run(name, func(t *testing.T) {
			client := NewClient(generator, nil, log.Log{})
			letter := client.GenerateOfferLetter(context.Background(), "John Doe", "Voice Actor")
			assert.Equal(t, offerLetterFallback, letter)
		})
	}
}

func TestGenerateScriptParsesModelJSON(t *testing.T) {
	client := NewClient(&fakeGenerator{
		text: `{"description": "Calm and steady.", "script": "The tide rises, the tide falls."}`,
	}, nil, log.Log{})

	script := client.GenerateScript(context.Background(), "the sea")
	assert.Equal(t, "Calm and steady.", script.Instruction)
	assert.Equal(t, "The tide rises, the tide falls.", script.Script)
}

func TestGenerateScriptFallsBack(t *testing.T) {
	cases := map[string]TextGenerator{
		"transport error": &fakeGenerator{err: errors.New("unavailable")},
		"malformed json":  &fakeGenerator{text: "sorry, here is your script:"},
		"missing script":  &fakeGenerator{text: `{"description": "x"}`},
		"no generator":    nil,
	}
	for name, generator := range cases {
		t.Run(name, func(t *testing.T) {
			client := NewClient(generator, nil, log.Log{})
			script := client.GenerateScript(context.Background(), "anything")
			assert.Equal(t, scriptFallback, script)
		})
	}
}
