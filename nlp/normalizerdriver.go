package nlp

import (
	ctx "context"
	"log"

	"github.com/soumitsalman/globaldoc/nlp/utils"
	"github.com/tmc/langchaingo/llms/googleai"
)

const _MODEL = "gemini-pro"

type NormalizerDriver struct {
	report_chain *JsonValueExtraction
}

func NewNormalizerDriver(api_key string) *NormalizerDriver {
	client, err := googleai.New(
		ctx.Background(),
		googleai.WithAPIKey(api_key),
		googleai.WithDefaultModel(_MODEL))
	if err != nil {
		log.Println("[normalizerdriver]", err)
		return nil
	}
	return &NormalizerDriver{
		report_chain: NewJsonValueExtraction(client, _REPORT_EXTRACTION_INSTRUCTION, _REPORT_SAMPLE_OUTPUT),
	}
}

// ExtractNormalizedReport is one request/response exchange with the language
// model. A transport failure and a response that is not json even after
// de-fencing surface as the same error.
func (client *NormalizerDriver) ExtractNormalizedReport(text string) (*NormalizedReport, error) {
	result, err := client.report_chain.Call(
		ctx.Background(),
		map[string]any{_default_input_key: utils.TruncateTextOnTokenCount(text)})
	if err != nil {
		log.Println("[normalizerdriver] ExtractNormalizedReport failed.", err)
		return nil, err
	}
	value := result[_default_output_key].(NormalizedReport)
	return &value, nil
}
