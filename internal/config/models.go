package config

// ModelCandidates is an ordered list of model identifiers per request shape.
// Vision models handle requests that carry a photo, text models the rest.
type ModelCandidates struct {
	Vision []string
	Text   []string
}

// For returns the candidate list matching the request shape.
func (m ModelCandidates) For(hasImage bool) []string {
	if hasImage {
		return m.Vision
	}
	return m.Text
}

// PrimaryModels is the Tier-1 candidate list. Free gemma models carry the
// text traffic; image requests need a vision-capable gemini.
var PrimaryModels = ModelCandidates{
	Vision: []string{"gemini-2.5-flash-image", "gemini-2.5-flash-image-preview"},
	Text:   []string{"gemma-3-4b-it", "gemma-3-12b-it", "gemma-3-27b-it"},
}

// FallbackModels is the Tier-3 list, tried after catalog discovery fails.
// It repeats the primary list and adds a generic text model as a last resort.
var FallbackModels = ModelCandidates{
	Vision: []string{"gemini-2.5-flash-image", "gemini-2.5-flash-image-preview"},
	Text:   []string{"gemma-3-4b-it", "gemma-3-12b-it", "gemma-3-27b-it", "gemini-2.5-flash"},
}
