package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguage_IsValid(t *testing.T) {
	tests := []struct {
		lang  Language
		valid bool
	}{
		{LanguageEnglish, true},
		{LanguageTamil, true},
		{Language("fr"), false},
		{Language(""), false},
		{Language("EN"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.lang.IsValid())
		})
	}
}

func TestIsFallbackAnswer(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"exact match", FallbackAnswer, true},
		{"missing full stop", "The answer is not available in the provided documents", false},
		{"different case", "the answer is not available in the provided documents.", false},
		{"leading space", " " + FallbackAnswer, false},
		{"trailing space", FallbackAnswer + " ", false},
		{"paraphrase", "I could not find the answer in the provided documents.", false},
		{"empty", "", false},
		{"real answer", "The emergency helpline is 100.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFallbackAnswer(tt.text))
		})
	}
}

func TestLocalFallbackAnswer(t *testing.T) {
	assert.Equal(t, FallbackAnswer, LocalFallbackAnswer(LanguageEnglish))

	ta := LocalFallbackAnswer(LanguageTamil)
	assert.NotEmpty(t, ta)
	assert.NotEqual(t, FallbackAnswer, ta)

	// Unknown languages degrade to English.
	assert.Equal(t, FallbackAnswer, LocalFallbackAnswer(Language("fr")))
}
