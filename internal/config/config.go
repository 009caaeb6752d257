package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
)

type Config struct {
	ProjectID         string
	Region            string
	LogLevel          string
	AnthropicAPIKey   string
	ClaudeModel       string
	GeminiModel       string
	OpenAIAPIKey      string
	OpenAIModel       string
	ElevenLabsAPIKey  string
	ElevenLabsVoiceID string
	KMSKeyName        string
	VAPIDPublicKey    string
	VAPIDPrivateKey   string
	VAPIDEmail        string
	GuardServices     []dto.GuardService
	ThinkTimeout      time.Duration
	VoiceTTL          time.Duration
	AuthDisabled      bool
}

func New() *Config {
	return &Config{
		ProjectID:         os.Getenv("PROJECTID"),
		Region:            os.Getenv("REGION"),
		LogLevel:          os.Getenv("LOGLEVEL"),
		AnthropicAPIKey:   os.Getenv("ANTHROPICAPIKEY"),
		ClaudeModel:       getOrDefault("CLAUDEMODEL", "claude-sonnet-4-20250514"),
		GeminiModel:       getOrDefault("GEMINIMODEL", "gemini-2.0-flash"),
		OpenAIAPIKey:      os.Getenv("OPENAIAPIKEY"),
		OpenAIModel:       getOrDefault("OPENAIMODEL", "gpt-4o-mini"),
		ElevenLabsAPIKey:  os.Getenv("ELEVENLABSAPIKEY"),
		ElevenLabsVoiceID: os.Getenv("ELEVENLABSVOICEID"),
		KMSKeyName:        os.Getenv("KMSKEYNAME"),
		VAPIDPublicKey:    os.Getenv("VAPIDPUBLICKEY"),
		VAPIDPrivateKey:   os.Getenv("VAPIDPRIVATEKEY"),
		VAPIDEmail:        getOrDefault("VAPIDEMAIL", "tee@devoneers.com"),
		GuardServices:     getGuardServices(os.Getenv("GUARDSERVICES")),
		ThinkTimeout:      getDuration("THINKTIMEOUT", 30*time.Second),
		VoiceTTL:          getDuration("VOICETTL", time.Hour),
		AuthDisabled:      getBool("AUTHDISABLED"),
	}
}

func getOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

// getGuardServices parses "name=url,name=url" into monitored service entries.
func getGuardServices(raw string) []dto.GuardService {
	if raw == "" {
		return nil
	}

	var out []dto.GuardService
	for _, entry := range strings.Split(raw, ",") {
		name, url, ok := strings.Cut(strings.TrimSpace(entry), "=")
		if !ok || name == "" || url == "" {
			continue
		}
		out = append(out, dto.GuardService{Name: name, URL: url})
	}
	return out
}
