package main

import (
	"errors"

	"github.com/Cyclone1070/fileview/internal/ui"
	"github.com/Cyclone1070/fileview/internal/ui/services"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCommand(a *app) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "browse [PATH]",
		Short: "Browse the root interactively",
		Long: "Open a full-screen browser on a directory or file below the root.\n" +
			"Large files open at their tail; scrolling past the top loads earlier content\n" +
			"read.max_window bytes at a time.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ui.Options{Window: a.cfg.Read.MaxWindow}
			if len(args) == 1 {
				opts.StartPath = args[0]
			}

			ctx := cmd.Context()
			browser := ui.NewUI(ctx, a.service, services.NewGlamourRenderer(style), ui.DefaultSpinner, opts,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)

			err := browser.Start()
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "glamour style for markdown files (dark, light, notty); detected when empty")
	return cmd
}
