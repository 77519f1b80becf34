package utils

import (
	"github.com/pkoukk/tiktoken-go"
	datautils "github.com/soumitsalman/data-utils"
)

// symptom descriptions longer than this add nothing to extraction or
// classification quality
const _MAX_INPUT_TOKENS = 2048

func TruncateTextOnTokenCount(text string) string {
	tk, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		// an over-long input beats no input when the encoding cannot load
		return text
	}
	return tk.Decode(
		datautils.SafeSlice(
			tk.Encode(text, nil, nil),
			0, _MAX_INPUT_TOKENS,
		),
	)
}
