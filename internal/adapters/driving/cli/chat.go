package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driving/tui"
	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
)

var chatLang string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Opens a terminal chat with the assistant. Press ctrl+l to switch
between English and Tamil; the quick-action buttons ask common
questions in the current language.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatLang, "lang", "l", string(domain.PipelineLanguage), "interface language (en or ta)")
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	lang := domain.Language(chatLang)
	if !lang.IsValid() {
		return fmt.Errorf("unsupported language %q (use en or ta)", chatLang)
	}

	assistant, err := getAssistant()
	if err != nil {
		return err
	}

	return tui.Run(assistant, lang)
}
