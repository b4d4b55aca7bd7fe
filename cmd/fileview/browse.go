package main

import (
	"errors"
	"fmt"

	"github.com/Cyclone1070/fileview/internal/adapter"
	"github.com/Cyclone1070/fileview/internal/tool/file"
	"github.com/Cyclone1070/fileview/internal/ui/services"
	"github.com/Cyclone1070/fileview/internal/ui/views"
	"github.com/spf13/cobra"
)

var errNotADirectory = errors.New(adapter.InfoInvalidDirectory)

func newLsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [PATH]",
		Short: "List a directory below the root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p string
			if len(args) == 1 {
				p = args[0]
			}
			return a.list(cmd, p)
		},
	}
}

func (a *app) list(cmd *cobra.Command, p string) error {
	payload, err := a.service.ListDirectory(cmd.Context(), adapter.ListArgs{Path: p})
	if err != nil {
		return err
	}
	if !payload.Status {
		return errNotADirectory
	}
	fmt.Fprintln(cmd.OutOrStdout(), views.RenderListing(payload))
	return nil
}

func newCatCommand(a *app) *cobra.Command {
	var (
		seek   int64
		render bool
		width  int
	)

	cmd := &cobra.Command{
		Use:   "cat PATH",
		Short: "Print the tail of a file, or a window from --seek",
		Long: "Print a file. Files larger than read.max_window show only their tail\n" +
			"unless --seek is given. A directory is listed instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := a.service.ReadWindow(cmd.Context(), adapter.ReadArgs{Path: args[0], Seek: seek})
			if errors.Is(err, file.ErrIsDirectory) {
				return a.list(cmd, args[0])
			}
			if err != nil {
				return err
			}

			renderer := services.NewGlamourRenderer("")
			fmt.Fprint(cmd.OutOrStdout(), views.RenderFile(payload, render, width, renderer))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seek, "seek", 0, "byte offset to read from")
	cmd.Flags().BoolVar(&render, "render", false, "render markdown files")
	cmd.Flags().IntVar(&width, "width", services.DefaultWidth, "wrap width for rendered markdown")
	return cmd
}

func newGrepCommand(a *app) *cobra.Command {
	var (
		before, after   int
		caseInsensitive bool
	)

	cmd := &cobra.Command{
		Use:   "grep PATTERN [PATH]",
		Short: "Search files below the root for a regular expression",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			searchArgs := adapter.SearchArgs{
				Search: args[0],
				Before: before,
				After:  after,
			}
			if len(args) == 2 {
				searchArgs.Path = args[1]
			}
			if caseInsensitive {
				sensitive := false
				searchArgs.CaseSensitive = &sensitive
			}

			payload, err := a.service.Search(cmd.Context(), searchArgs)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), views.RenderSearch(payload))
			return nil
		},
	}

	cmd.Flags().IntVarP(&before, "before", "B", 0, "lines of context before each match")
	cmd.Flags().IntVarP(&after, "after", "A", 0, "lines of context after each match")
	cmd.Flags().BoolVarP(&caseInsensitive, "ignore-case", "i", false, "case-insensitive match")
	return cmd
}
