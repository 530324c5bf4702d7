package prompt

// TruncationMarker is appended when a prompt is cut to fit its budget
const TruncationMarker = "\n...[truncated]"

// EstimateTokens approximates the token count of text as ceil(len/4).
// This deliberately over-counts for most tokenizers so the budget errs on
// the safe side.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// TruncateToBudget hard-truncates text so its estimated token count never
// exceeds maxTokens, appending TruncationMarker when anything was cut.
// Applying it to an already-compliant string returns it unchanged, so the
// function is idempotent.
func TruncateToBudget(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	if EstimateTokens(text) <= maxTokens {
		return text
	}

	budget := maxTokens * 4
	if budget <= len(TruncationMarker) {
		return text[:budget]
	}

	return text[:budget-len(TruncationMarker)] + TruncationMarker
}
