package main

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/srt2txt/internal/fixer"
)

func newFixCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fix <file>",
		Short: "Apply the configured fix.replacements table to a file in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()

			cfg, log, err := setup(opts)
			if err != nil {
				return err
			}
			defer log.Sync()

			if len(cfg.Fix.Replacements) == 0 {
				log.Warn(ctx, "No replacements configured; add fix.replacements to the config file")
				return nil
			}

			// FixFile reports its own failure.
			_ = fixer.New(cfg.Fix.Replacements, log).FixFile(ctx, args[0])
			return nil
		},
	}
}
