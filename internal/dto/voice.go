package dto

type VoiceGenerateRequest struct {
	Text        string `json:"text"`
	Personality string `json:"personality,omitempty"`
}

type VoiceGenerateResponse struct {
	VoiceID     string `json:"voiceId"`
	URL         string `json:"url"`
	Personality string `json:"personality"`
}

// VoiceClip is a synthesized audio payload held in the clip cache.
type VoiceClip struct {
	Audio    []byte
	MimeType string
}

type ModeRequest struct {
	VoicePersonality string `json:"voicePersonality,omitempty"`
	VoiceEnabled     *bool  `json:"voiceEnabled,omitempty"`
}

type ModeResponse struct {
	VoicePersonality string `json:"voicePersonality"`
	VoiceEnabled     bool   `json:"voiceEnabled"`
}
