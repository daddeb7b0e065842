package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
)

var askLang string

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question",
	Long: `Answers one question from the indexed documents and exits.
Use --lang ta to ask and be answered in Tamil.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askLang, "lang", "l", string(domain.PipelineLanguage), "question language (en or ta)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	lang := domain.Language(askLang)
	if !lang.IsValid() {
		return fmt.Errorf("unsupported language %q (use en or ta)", askLang)
	}

	assistant, err := getAssistant()
	if err != nil {
		return err
	}

	answer, err := assistant.Answer(context.Background(), args[0], lang)
	if err != nil {
		if errors.Is(err, domain.ErrIndexMissing) {
			return errors.New("document index not built yet; run 'kaaval index <pdf-dir>' first")
		}
		return err
	}

	cmd.Println(answer.Text)
	return nil
}
