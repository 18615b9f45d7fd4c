package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"glossary-extractor/internal/config"
	"glossary-extractor/internal/dictionary"
	"glossary-extractor/internal/logging"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "glossary-extractor [input_path] [dict_paths...]",
		Short: "Extract glossary terms found in documents",
		Long: `Scans a document, or every .txt, .md, .docx and .pdf file under a directory,
for the words defined in one or more JSON or CSV dictionaries and writes the
matching terms with their meanings as a glossary (docx, html, txt or md).`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         runExtract,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (.toml, .yaml or .yml)")
	pf.String("log", "", "Log file to write to. Logs are always printed to the terminal.")
	pf.String("verbosity", "INFO", "Verbosity level: "+strings.Join(config.VerbosityLevels, ", "))

	f := rootCmd.Flags()
	f.Bool("interactive", false, "Prompt for every option instead of reading flags")
	f.String("output-format", "docx", "Output format: "+strings.Join(config.OutputFormats, ", "))
	f.String("output-file", "", "Output file name (default output.<format>)")
	f.String("language", "en", "Language of the 'Also see' text: "+strings.Join(config.Languages, ", "))
	f.Int("workers", 1, "Number of documents matched in parallel")
	f.String("matcher", "scan", "Matching strategy: "+strings.Join(config.Matchers, ", "))

	rootCmd.AddCommand(checkCmd())

	return rootCmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <dict_paths...>",
		Short: "Load dictionaries and report sources, terms and overwrites",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return logConfigError(cmd, err)
			}
			if len(args) > 0 {
				cfg.DictPaths = args
			}
			cfg.Normalize()

			logger, closeLog, err := newRunLogger(cmd, cfg)
			if err != nil {
				return logConfigError(cmd, err)
			}
			defer closeLog()

			if len(cfg.DictPaths) == 0 {
				err := fmt.Errorf("%w: at least one dictionary path is required", config.ErrInvalid)
				logger.Error().Err(err).Str("stage", "validate config").Msg("Check failed")
				return err
			}

			terms, stats, err := dictionary.NewLoader(logger).Load(cfg.DictPaths)
			if err != nil {
				logger.Error().Err(err).Str("stage", "load dictionaries").Msg("Check failed")
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sources:    %d\n", len(stats.Sources))
			for _, src := range stats.Sources {
				fmt.Fprintf(out, "  %s\n", src)
			}
			fmt.Fprintf(out, "records:    %d\n", stats.Records)
			fmt.Fprintf(out, "terms:      %d\n", terms.Len())
			fmt.Fprintf(out, "overwrites: %d\n", stats.Overwrites)
			return nil
		},
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return logConfigError(cmd, err)
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive {
		if err := promptConfig(cmd.InOrStdin(), cmd.OutOrStdout(), cfg); err != nil {
			return logConfigError(cmd, fmt.Errorf("interactive input: %w", err))
		}
	} else {
		if len(args) > 0 {
			cfg.InputPath = args[0]
		}
		if len(args) > 1 {
			cfg.DictPaths = args[1:]
		}
		applyFlags(cmd, cfg)
	}

	cfg.Normalize()

	logger, closeLog, err := newRunLogger(cmd, cfg)
	if err != nil {
		return logConfigError(cmd, err)
	}
	defer closeLog()

	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Str("stage", "validate config").Msg("Run failed")
		return err
	}

	ctx, cancel := setupContext(logger)
	defer cancel()

	return Run(ctx, cfg, logger)
}

// newRunLogger builds the logger before cfg is validated. An unknown
// verbosity falls back to INFO and is reported by Validate.
func newRunLogger(cmd *cobra.Command, cfg *config.Config) (zerolog.Logger, func() error, error) {
	level := cfg.Verbosity
	if _, err := logging.ParseLevel(level); err != nil {
		level = ""
	}
	return logging.New(logging.Options{Level: level, File: cfg.LogFile, Console: cmd.ErrOrStderr()})
}

// logConfigError reports err on a console logger when no run logger exists.
func logConfigError(cmd *cobra.Command, err error) error {
	logger, _, _ := logging.New(logging.Options{Console: cmd.ErrOrStderr()})
	logger.Error().Err(err).Str("stage", "load config").Msg("Run failed")
	return err
}

// loadConfig reads defaults, the config file and the environment, then the
// persistent flags shared by every command.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log") {
		cfg.LogFile, _ = cmd.Flags().GetString("log")
	}
	if cmd.Flags().Changed("verbosity") {
		cfg.Verbosity, _ = cmd.Flags().GetString("verbosity")
	}
	return cfg, nil
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output-format") {
		cfg.OutputFormat, _ = flags.GetString("output-format")
	}
	if flags.Changed("output-file") {
		cfg.OutputFile, _ = flags.GetString("output-file")
	}
	if flags.Changed("language") {
		cfg.Language, _ = flags.GetString("language")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("matcher") {
		cfg.Matcher, _ = flags.GetString("matcher")
	}
}

// setupContext creates a cancellable context with signal handling.
func setupContext(logger zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			logger.Warn().Msg("Received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
