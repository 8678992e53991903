package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/horrorlist/pkg/commands/options"
	"tableflip.dev/horrorlist/pkg/config"
	"tableflip.dev/horrorlist/pkg/logging"
	"tableflip.dev/horrorlist/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	uo := &options.UIOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the horror movie watchlist",
		Example: `
horrorlist ui
horrorlist ui --seed ~/.horrorlist/seed.yaml --no-audio
horrorlist ui --filter classic
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("ui needs an interactive terminal")
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			u := ui.UI{
				Config:   *cfg,
				SeedPath: uo.Seed,
				NoAudio:  uo.NoAudio,
				Filter:   uo.GetFilter(),
				Logger:   logger,
			}
			if err := u.Do(context.Background()); err != nil {
				return fmt.Errorf("horrorlist: %w", err)
			}
			return nil
		},
	}

	options.AddUIArgs(cmd, uo)
	_ = cmd.RegisterFlagCompletionFunc("filter", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
