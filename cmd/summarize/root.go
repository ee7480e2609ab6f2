package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"textdigest/internal/config"
	"textdigest/internal/domain/entity"
	"textdigest/internal/infra/fetcher"
	"textdigest/internal/infra/summarizer"
	"textdigest/internal/observability/logging"
	"textdigest/internal/usecase/fetch"
	"textdigest/internal/usecase/summarize"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// result is the JSON document printed with --output json.
type result struct {
	Summary          string         `json:"summary"`
	FormattedSummary string         `json:"formatted_summary"`
	Layout           string         `json:"layout"`
	Script           string         `json:"script"`
	CompressionRatio float64        `json:"compression_ratio"`
	SentenceIndices  []int          `json:"sentence_indices"`
	Metrics          entity.Metrics `json:"metrics"`
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "summarize [file|-]",
		Short: "Extractive summary of a text file, standard input or web page",
		Long: `summarize picks the most representative sentences of a document with
TextRank and prints them in the chosen layout.

The document is read from FILE, from standard input when FILE is "-" or
omitted, or fetched from --url. Settings may also come from TEXTDIGEST_*
environment variables and from a .env file in the working directory.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load .env: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args, stdin, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.String("url", "", "fetch the document from this http(s) URL")
	flags.Float64("ratio", 0, "fraction of the text to remove, 0 to 1 (default from SUMMARIZER_DEFAULT_COMPRESSION_RATIO)")
	flags.String("layout", "", "plain, bullet or paragraph (default from SUMMARIZER_DEFAULT_LAYOUT)")
	flags.StringP("output", "o", outputText, "output format: text or json")
	flags.String("log-level", "warn", "log level for diagnostics on stderr")

	for _, name := range []string{"url", "ratio", "layout", "output", "log-level"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	v.SetEnvPrefix("textdigest")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	output := strings.ToLower(v.GetString("output"))
	if output != outputText && output != outputJSON {
		return fmt.Errorf("--output must be %q or %q, got %q", outputText, outputJSON, output)
	}

	logger := logging.New(stderr, "text", v.GetString("log-level"))
	ctx := logging.WithLogger(cmd.Context(), logger)

	sumCfg, err := config.LoadSummarizerConfig()
	if err != nil {
		return err
	}
	textRank, err := summarizer.NewTextRank(sumCfg.Ranking)
	if err != nil {
		return err
	}

	req := summarize.Request{
		URL:    strings.TrimSpace(v.GetString("url")),
		Layout: v.GetString("layout"),
	}
	if v.IsSet("ratio") {
		ratio := v.GetFloat64("ratio")
		req.CompressionRatio = &ratio
	}

	var contentFetcher fetch.ContentFetcher
	switch {
	case req.URL != "" && len(args) > 0:
		return errors.New("give either a file or --url, not both")
	case req.URL != "":
		fetchCfg, err := fetcher.LoadConfigFromEnv()
		if err != nil {
			return err
		}
		if fetchCfg.Enabled {
			contentFetcher = fetcher.NewReadabilityFetcher(fetchCfg)
		}
	default:
		text, err := readDocument(args, stdin)
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			return errors.New("document is empty")
		}
		req.Text = text
	}

	svc := summarize.NewService(textRank, contentFetcher, sumCfg.Service)
	res, err := svc.Summarize(ctx, req)
	if err != nil {
		return err
	}
	logger.Debug("summary ready",
		slog.Int("source_sentences", res.Metrics.OriginalSentenceCount),
		slog.Int("selected_sentences", len(res.SentenceIndices)))

	if output == outputJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(result{
			Summary:          res.Summary,
			FormattedSummary: res.FormattedSummary,
			Layout:           res.Layout.String(),
			Script:           res.Script.String(),
			CompressionRatio: res.CompressionRatio,
			SentenceIndices:  res.SentenceIndices,
			Metrics:          res.Metrics,
		})
	}
	_, err = fmt.Fprintln(stdout, res.FormattedSummary)
	return err
}

// readDocument reads the named file, or stdin for "-" or no argument.
func readDocument(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0]) // #nosec G304 -- user-selected input file
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}
