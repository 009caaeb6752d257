package mind

import (
	"strings"
	"unicode/utf8"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
)

// Routing is keyword- and shape-based. Priority order (creative/complex
// checked first, simple last):
//
//  1. creative keywords -> Claude
//  2. complex keywords -> Claude
//  3. data keywords -> Gemini
//  4. Arabic content (10+ Arabic runes) -> Claude
//  5. long queries (200+ runes) -> Claude
//  6. short simple patterns (<30 runes) -> Gemini
//  7. default -> Gemini
//
// The fallback engine is always OpenAI, except when the primary already is
// OpenAI, in which case Gemini takes the hop.

var creativeKeywords = []string{
	"imagine", "compose", "lyrics", "kahotia", "art", "poem", "song",
	"story", "creative", "write me", "paint", "dream", "muse",
	"philosophical", "inspire", "تخيل", "كاهوتيا", "أغنية", "شعر",
	"فلسفة", "قصة", "ألهمني",
}

var complexKeywords = []string{
	"design", "analyze", "architecture", "rootrise", "devoneers",
	"pantheon", "strategy", "explain", "compare", "evaluate",
	"plan", "build", "implement", "help me", "how should",
	"what if", "crema", "transform", "mswd", "funding", "essay",
	"صمم", "حلل", "خطة", "ساعدني",
}

var dataKeywords = []string{
	"research", "summarize", "data", "statistics",
	"list", "find", "search", "numbers", "report", "trends",
	"بحث", "بيانات", "إحصائيات", "قارن",
}

var simplePatterns = []string{
	"hello", "hi", "hey", "thanks", "thank you", "ok", "okay",
	"yes", "no", "bye", "good", "great", "cool", "nice",
	"أهلاً", "مرحبا", "شكراً", "تمام", "حلو",
}

// Route classifies a query and picks the engine that should answer it,
// plus the fallback engine for the single retry hop. Pure function.
func Route(query string) dto.EngineDecision {
	q := strings.ToLower(strings.TrimSpace(query))

	switch {
	case matchesAny(q, creativeKeywords):
		return decision(dto.EngineClaude, dto.CategoryCreative)
	case matchesAny(q, complexKeywords):
		return decision(dto.EngineClaude, dto.CategoryComplex)
	case matchesAny(q, dataKeywords):
		return decision(dto.EngineGemini, dto.CategoryData)
	case arabicRunes(query) >= 10:
		return decision(dto.EngineClaude, dto.CategoryArabic)
	// Length thresholds count runes, not bytes, so Arabic and other
	// multibyte text is measured the same as ASCII.
	case utf8.RuneCountInString(query) >= 200:
		return decision(dto.EngineClaude, dto.CategoryLong)
	case utf8.RuneCountInString(q) < 30 && isSimple(q):
		return decision(dto.EngineGemini, dto.CategorySimple)
	default:
		return decision(dto.EngineGemini, dto.CategoryDefault)
	}
}

func decision(engine dto.Engine, category dto.Category) dto.EngineDecision {
	return dto.EngineDecision{
		Engine:   engine,
		Category: category,
		Fallback: fallbackFor(engine),
	}
}

func fallbackFor(engine dto.Engine) dto.Engine {
	if engine == dto.EngineOpenAI {
		return dto.EngineGemini
	}
	return dto.EngineOpenAI
}

func matchesAny(query string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}

func arabicRunes(query string) int {
	count := 0
	for _, r := range query {
		if r >= 0x0600 && r <= 0x06FF {
			count++
		}
	}
	return count
}

func isSimple(query string) bool {
	if utf8.RuneCountInString(query) < 10 {
		return true
	}
	for _, pattern := range simplePatterns {
		if query == pattern ||
			strings.HasPrefix(query, pattern+" ") ||
			strings.HasPrefix(query, pattern+",") {
			return true
		}
	}
	return false
}
