// Package domain holds DTOs for the detect http and service contracts
package domain

// DetectionRequest is the payload a caller submits for classification.
// The whitelists are enforced at bind time; language matching is
// case-sensitive on purpose
type DetectionRequest struct {
	Language    string `json:"language"     validate:"required,oneof=Tamil English Hindi Malayalam Telugu" example:"English"`
	AudioFormat string `json:"audio_format" validate:"required,oneof=mp3"                                  example:"mp3"`
	AudioBase64 string `json:"audio_base64" validate:"required,base64"`
}

// DetectionResponse is the verdict for one clip.
// classification is AI_GENERATED exactly when confidence_score > 0.5
type DetectionResponse struct {
	Classification  string  `json:"classification"   example:"AI_GENERATED"`
	ConfidenceScore float64 `json:"confidence_score" example:"0.8731"`
	Language        string  `json:"language"         example:"English"`
	Explanation     string  `json:"explanation"`
}
