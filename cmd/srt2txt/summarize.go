package main

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/srt2txt/internal/summarizer"
	"github.com/nguyentantai21042004/srt2txt/internal/transcript"
)

func newSummarizeCmd(opts *options) *cobra.Command {
	var docx bool

	cmd := &cobra.Command{
		Use:   "summarize <path>",
		Short: "Write a Gemini summary (.md) beside each SRT file",
		Long: `Write a Gemini summary (.md) beside each SRT file.

API keys come from gemini.api_keys in the config file or the comma separated
GEMINI_API_KEYS environment variable; they are rotated on rate limits.
With --docx (or docx.enabled) each summary is also rendered to .summary.docx.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, log, err := setup(opts)
			if err != nil {
				return err
			}
			defer log.Sync()

			var style *transcript.Style
			if docx || cfg.Docx.Enabled {
				style = &transcript.Style{Font: cfg.Docx.Font, FontSize: cfg.Docx.FontSize}
			}

			return summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, style, log).SummarizeAll(cmd.Context(), args[0])
		},
	}

	cmd.Flags().BoolVar(&docx, "docx", false, "also render each summary to a .summary.docx file")
	return cmd
}
