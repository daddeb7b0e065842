package domain

// Language is a supported UI language code.
type Language string

// Supported languages. The pipeline itself always works in English;
// Tamil is served through the translation boundary.
const (
	LanguageEnglish Language = "en"
	LanguageTamil   Language = "ta"
)

// PipelineLanguage is the fixed working language of retrieval and
// generation. The corpus is English and the instruction template is
// English, so every query is normalised to it before retrieval.
const PipelineLanguage = LanguageEnglish

// FallbackAnswer is the canonical English sentence the generator
// must emit verbatim when the context does not contain the answer.
// Fallback detection is byte-exact equality against this string.
const FallbackAnswer = "The answer is not available in the provided documents."

// fallbackAnswers holds the canonical fallback sentence per
// language. When a fallback is shown in a non-English UI, the
// sentence is looked up here rather than machine-translated, so the
// user always sees a well-formed message.
var fallbackAnswers = map[Language]string{
	LanguageEnglish: FallbackAnswer,
	LanguageTamil:   "வழங்கப்பட்ட ஆவணங்களில் இந்த கேள்விக்கான பதில் இல்லை.",
}

// IsValid returns true if the language is supported.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageTamil:
		return true
	default:
		return false
	}
}

// String returns the language code.
func (l Language) String() string {
	return string(l)
}

// LocalFallbackAnswer returns the canonical fallback sentence in the
// given language. Unknown languages fall back to English.
func LocalFallbackAnswer(lang Language) string {
	if s, ok := fallbackAnswers[lang]; ok {
		return s
	}
	return FallbackAnswer
}

// IsFallbackAnswer reports whether text is exactly the canonical
// English fallback sentence. The comparison is case- and
// whitespace-sensitive; paraphrases do not count.
func IsFallbackAnswer(text string) bool {
	return text == FallbackAnswer
}
