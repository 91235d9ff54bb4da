package main

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/srt2txt/internal/converter"
	"github.com/nguyentantai21042004/srt2txt/internal/processor"
	"github.com/nguyentantai21042004/srt2txt/pkg/executor"
)

func newTranscribeCmd(opts *options) *cobra.Command {
	var (
		keepInput bool
		docx      bool
	)

	cmd := &cobra.Command{
		Use:   "transcribe <media>",
		Short: "Transcribe a media file with whisper into .srt and .txt",
		Long: `Transcribe a media file with whisper into .srt and .txt.

ffmpeg extracts 16kHz mono audio, whisper writes the subtitle, the cleanup
table removes hallucinated phrases, and the .txt transcript is written beside
the .srt. The media file is then moved to transcribe.archive_dir.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, log, err := setup(opts)
			if err != nil {
				return err
			}
			defer log.Sync()

			if err := cfg.ValidateTranscribe(); err != nil {
				return err
			}
			if docx {
				cfg.Docx.Enabled = true
			}

			proc := processor.New(cfg, executor.New(), converter.New(cfg, log), log, keepInput)
			return proc.Process(cmd.Context(), args[0])
		},
	}

	cmd.Flags().BoolVar(&keepInput, "keep-input", false, "leave the media file in place instead of archiving it")
	cmd.Flags().BoolVar(&docx, "docx", false, "also write a .docx transcript beside the .txt")
	return cmd
}
