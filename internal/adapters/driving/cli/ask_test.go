package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
)

// mockAssistant is a stub driving.AssistantService for command tests.
type mockAssistant struct {
	answer    domain.Answer
	err       error
	lastQuery string
	lastLang  domain.Language
	ready     bool
}

func (m *mockAssistant) Answer(_ context.Context, query string, lang domain.Language) (domain.Answer, error) {
	m.lastQuery = query
	m.lastLang = lang
	if m.err != nil {
		return domain.Answer{}, m.err
	}
	return m.answer, nil
}

func (m *mockAssistant) Ready() bool { return m.ready }

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func withAssistant(t *testing.T, m *mockAssistant) {
	t.Helper()
	original := assistantService
	assistantService = m
	t.Cleanup(func() { assistantService = original })
}

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_PrintsAnswer(t *testing.T) {
	m := &mockAssistant{
		answer: domain.Answer{Text: "The emergency helpline is 100."},
		ready:  true,
	}
	withAssistant(t, m)

	out, err := execute(t, "ask", "What is the emergency helpline?")
	require.NoError(t, err)

	assert.Contains(t, out, "The emergency helpline is 100.")
	assert.Equal(t, "What is the emergency helpline?", m.lastQuery)
	assert.Equal(t, domain.LanguageEnglish, m.lastLang)
}

func TestAskCmd_TamilFlag(t *testing.T) {
	m := &mockAssistant{
		answer: domain.Answer{Text: "அவசர உதவி எண் 100."},
		ready:  true,
	}
	withAssistant(t, m)
	defer func() { askLang = string(domain.PipelineLanguage) }()

	out, err := execute(t, "ask", "--lang", "ta", "அவசர உதவி எண் என்ன?")
	require.NoError(t, err)

	assert.Contains(t, out, "அவசர உதவி எண் 100.")
	assert.Equal(t, domain.LanguageTamil, m.lastLang)
}

func TestAskCmd_InvalidLanguage(t *testing.T) {
	withAssistant(t, &mockAssistant{})
	defer func() { askLang = string(domain.PipelineLanguage) }()

	_, err := execute(t, "ask", "--lang", "fr", "bonjour?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestAskCmd_IndexMissing(t *testing.T) {
	withAssistant(t, &mockAssistant{err: domain.ErrIndexMissing})

	_, err := execute(t, "ask", "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaaval index")
}

func TestAskCmd_RequiresQuestion(t *testing.T) {
	withAssistant(t, &mockAssistant{})

	_, err := execute(t, "ask")
	require.Error(t, err)
}
