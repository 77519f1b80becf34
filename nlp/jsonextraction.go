package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	datautils "github.com/soumitsalman/data-utils"
	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
	"github.com/tmc/langchaingo/schema"
)

const (
	// first %s is for `context` and the second %s is for `format_instructions`
	json_extraction_template = "CONTEXT: %s\n\n" +
		"OUTPUT FORMAT: %s\n\n" +
		"TASK: Based on the context extract the values in the defined output format from the input content below:\n\n" +
		"{{.input_text}}"

	_default_input_key  = "input_text"
	_default_output_key = "value"
)

type JsonValueExtraction struct {
	llm_chain *chains.LLMChain
}

func NewJsonValueExtraction[T any](llm llms.Model, context string, sample_value T) *JsonValueExtraction {
	parser := NewJsonOutputParser(sample_value)

	extraction_prompt := prompts.NewPromptTemplate(
		fmt.Sprintf(json_extraction_template, context, parser.GetFormatInstructions()),
		[]string{_default_input_key})

	internal_chain := chains.NewLLMChain(llm, extraction_prompt, chains.WithTemperature(0))
	internal_chain.OutputParser = parser
	internal_chain.OutputKey = _default_output_key

	return &JsonValueExtraction{internal_chain}
}

func (c JsonValueExtraction) Call(ctx context.Context, values map[string]any, options ...chains.ChainCallOption) (map[string]any, error) {
	return c.llm_chain.Call(ctx, values, options...)
}

// GetMemory returns the memory.
func (c JsonValueExtraction) GetMemory() schema.Memory {
	return c.llm_chain.Memory
}

// GetInputKeys returns the expected input keys.
func (c JsonValueExtraction) GetInputKeys() []string {
	return append([]string{}, c.llm_chain.Prompt.GetInputVariables()...)
}

// GetOutputKeys returns the output keys the chain will return.
func (c JsonValueExtraction) GetOutputKeys() []string {
	return []string{c.llm_chain.OutputKey}
}

// JsonOutputParser unmarshals a model response into T. language models
// routinely wrap the object in markdown code fence delimiters even when told
// not to, so the fences are stripped before parsing.
type JsonOutputParser[T any] struct {
	sample_value T
}

func NewJsonOutputParser[T any](sample_value T) *JsonOutputParser[T] {
	return &JsonOutputParser[T]{sample_value}
}

func (parser *JsonOutputParser[T]) GetFormatInstructions() string {
	return fmt.Sprintf(
		"The output MUST be one json object following the json schema below.\n```json\n%s\n```\n"+
			"Here is a sample output\n```json\n%s\n```",
		datautils.ToJsonString(jsonschema.Reflect(parser.sample_value)),
		datautils.ToJsonString(parser.sample_value))
}

func (parser *JsonOutputParser[T]) Parse(text string) (any, error) {
	var value T
	if err := json.Unmarshal([]byte(StripMarkdownFence(text)), &value); err != nil {
		return nil, err
	}
	return value, nil
}

func (parser *JsonOutputParser[T]) ParseWithPrompt(text string, prompt schema.PromptValue) (any, error) {
	return parser.Parse(text)
}

func (parser *JsonOutputParser[T]) Type() string {
	return "json_output_parser"
}

func StripMarkdownFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
