package tui

import "github.com/kaaval-labs/kaaval-cli/internal/core/domain"

// Text holds the interface strings for one language.
type Text struct {
	Title       string
	Welcome     string
	Placeholder string
	Thinking    string
	Buttons     [3]string
	Hint        string
}

// uiText carries the full bilingual interface copy. The assistant
// answers in whichever language is active; these strings only dress
// the shell around it.
var uiText = map[domain.Language]Text{
	domain.LanguageEnglish: {
		Title:       "Police Assistance Cell",
		Welcome:     "Welcome! I am the Thoothukudi District Police Assistance bot. How can I help you?",
		Placeholder: "Type your question here...",
		Thinking:    "Thinking...",
		Buttons: [3]string{
			"Emergency contacts",
			"Police stations",
			"How to file a complaint?",
		},
		Hint: "enter: ask • f1-f3: quick questions • ctrl+l: தமிழ் • ctrl+c: quit",
	},
	domain.LanguageTamil: {
		Title:       "காவல்துறை உதவி செயலி",
		Welcome:     "வணக்கம்! தூத்துக்குடி மாவட்ட காவல்துறை உதவி செயலிக்கு உங்களை வரவேற்கிறோம். நான் உங்களுக்கு எப்படி உதவ முடியும்?",
		Placeholder: "உங்கள் கேள்வியை இங்கு தட்டச்சு செய்யவும்...",
		Thinking:    "சிந்திக்கிறேன்...",
		Buttons: [3]string{
			"அவசர உதவி எண்கள்",
			"காவல் நிலையங்கள்",
			"புகார் அளிப்பது எப்படி?",
		},
		Hint: "enter: கேள் • f1-f3: விரைவு கேள்விகள் • ctrl+l: English • ctrl+c: வெளியேறு",
	},
}

// UIText returns the interface strings for lang, defaulting to
// English for anything unknown.
func UIText(lang domain.Language) Text {
	if t, ok := uiText[lang]; ok {
		return t
	}
	return uiText[domain.LanguageEnglish]
}
