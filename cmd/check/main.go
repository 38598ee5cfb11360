package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"newscheck/internal/app"
	"newscheck/internal/config"
	"newscheck/internal/samples"
	"newscheck/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type options struct {
	file   string
	title  string
	sample string
	asJSON bool
}

func main() {

	godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "check [text]",
		Short: "Classify a news article and ask an LLM whether it agrees",
		Long: "check sends an article to the fake news classifier and then asks the configured " +
			"LLM to agree or disagree with the prediction. The article is read from the " +
			"arguments, --file, --sample, or standard input.",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, text, err := readArticle(opts, args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			checker, err := app.NewChecker(cmd.Context(), cfg, nil, nil)
			if err != nil {
				return err
			}

			res, err := checker.Analyze(cmd.Context(), service.Request{Title: title, Text: text})
			if err != nil {
				return err
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			writeReport(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read the article body from a file")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "article headline, prepended to the body")
	cmd.Flags().StringVarP(&opts.sample, "sample", "s", "", "analyze a built-in sample by title")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")

	cmd.AddCommand(newSamplesCmd())

	return cmd
}

func newSamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List the built-in sample articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := samples.Default()
			if err != nil {
				return err
			}
			for _, s := range catalog.List() {
				fmt.Fprintln(cmd.OutOrStdout(), s.Title)
			}
			return nil
		},
	}
}

func readArticle(opts *options, args []string, stdin io.Reader) (string, string, error) {
	switch {
	case opts.sample != "":
		catalog, err := samples.Default()
		if err != nil {
			return "", "", err
		}
		s, ok := catalog.Get(opts.sample)
		if !ok {
			return "", "", fmt.Errorf("unknown sample %q", opts.sample)
		}
		return s.Title, s.Body, nil
	case opts.file != "":
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", opts.file, err)
		}
		return opts.title, string(data), nil
	case len(args) > 0:
		return opts.title, strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return opts.title, string(data), nil
}

type jsonResult struct {
	Text           string      `json:"text"`
	Prediction     any         `json:"prediction"`
	Explainability jsonVerdict `json:"explainability"`
	Warnings       []string    `json:"warnings"`
}

type jsonVerdict struct {
	AgreeOrNot    string `json:"agreeOrNot"`
	Explanation   string `json:"explanation"`
	Status        string `json:"status"`
	ResponseError int    `json:"response_error,omitempty"`
	ModelUsed     string `json:"model_used,omitempty"`
}

func writeJSON(w io.Writer, res *service.Result) error {
	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonResult{
		Text:       res.Text,
		Prediction: res.Prediction,
		Explainability: jsonVerdict{
			AgreeOrNot:    res.Verdict.AgreeOrNot,
			Explanation:   res.Verdict.Explanation,
			Status:        string(res.Verdict.Status),
			ResponseError: res.Verdict.ResponseError,
			ModelUsed:     res.Verdict.ModelUsed,
		},
		Warnings: warnings,
	})
}

func writeReport(w io.Writer, res *service.Result) {
	for _, warning := range res.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}

	fmt.Fprintln(w, "Prediction")
	fmt.Fprintf(w, "  label: %s\n", res.Prediction.Label)
	fmt.Fprintf(w, "  prob:  %v\n", res.Prediction.Probability)

	fmt.Fprintln(w, "Explainability")
	if res.Verdict.ResponseError != 0 {
		fmt.Fprintf(w, "  LLM API response issue: response: %d\n", res.Verdict.ResponseError)
		return
	}
	fmt.Fprintf(w, "  agreeOrNot:  %s\n", res.Verdict.AgreeOrNot)
	fmt.Fprintf(w, "  explanation: %s\n", res.Verdict.Explanation)
}
