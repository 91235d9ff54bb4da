package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/srt2txt/internal/config"
	"github.com/nguyentantai21042004/srt2txt/internal/converter"
	"github.com/nguyentantai21042004/srt2txt/internal/logger"
	"github.com/nguyentantai21042004/srt2txt/internal/watcher"
)

type options struct {
	configPath string
	logLevel   string
	docx       bool
	watch      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "srt2txt <path>",
		Short: "Convert SRT files to plain text (TXT), removing timestamps and indices.",
		Long: `Convert SRT files to plain text (TXT), removing timestamps and indices.

<path> is an SRT file or a directory; directories are searched recursively and
every .srt file gets a .txt file written beside it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runConvert(cmd.Context(), opts, args[0])
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&opts.docx, "docx", false, "also write a .docx transcript beside each .txt")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "keep watching the directory and convert new .srt files")

	cmd.AddCommand(newFixCmd(opts), newSummarizeCmd(opts), newTranscribeCmd(opts))
	return cmd
}

// setup loads the config and builds the logger shared by every command.
func setup(opts *options) (*config.Config, logger.Logger, error) {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	return cfg, logger.New(cfg.Logging.Level), nil
}

func runConvert(ctx context.Context, opts *options, path string) error {
	cfg, log, err := setup(opts)
	if err != nil {
		return err
	}
	defer log.Sync()

	if opts.docx {
		cfg.Docx.Enabled = true
	}

	conv := converter.New(cfg, log)

	// Per-file failures and a missing path are reported by the converter;
	// neither changes the exit status.
	if _, err := conv.ProcessPath(ctx, path); err != nil {
		return nil
	}

	if !opts.watch {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		log.Warn(ctx, "--watch needs a directory, not watching %s", path)
		return nil
	}

	return watch(ctx, path, conv, cfg, log)
}

func watch(ctx context.Context, root string, conv converter.Converter, cfg *config.Config, log logger.Logger) error {
	w, err := watcher.New(root, conv.ConvertFile, log, cfg.Watch.SettleDelay)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	return nil
}
