package dto

import "time"

type ThinkRequest struct {
	Query         string `json:"query"`
	Language      string `json:"language,omitempty"`
	ContextWindow int    `json:"contextWindow,omitempty"`
}

type ThinkResponse struct {
	Response   string    `json:"response"`
	Engine     Engine    `json:"engine"`
	Category   Category  `json:"category"`
	Cost       float64   `json:"cost"`
	Transcript string    `json:"transcript,omitempty"`
	VoiceID    string    `json:"voiceId,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type TranscriptionRequest struct {
	Filename string
	Language string
	Audio    []byte
}
