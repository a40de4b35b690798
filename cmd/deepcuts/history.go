package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage stored listening histories",
	}
	cmd.AddCommand(newHistoryImportCmd(a), newHistoryShowCmd(a), newHistoryListCmd(a))
	return cmd
}

func newHistoryImportCmd(a *app) *cobra.Command {
	var name, playlist string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Store tracks from a CSV or line file, a playlist, or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			ctx := cmd.Context()

			svc, err := a.newService(ctx, serviceDeps{storage: true})
			if err != nil {
				return err
			}

			var (
				tracks []domain.Track
				source string
			)
			switch {
			case playlist != "":
				tracks, err = svc.ResolvePlaylist(ctx, playlist)
				source = "playlist"
			case len(args) == 1 && strings.EqualFold(filepath.Ext(args[0]), ".csv"):
				tracks, err = readFile(args[0], readCSV)
				source = "csv"
			case len(args) == 1:
				tracks, err = readFile(args[0], readLines)
				source = "lines"
			case stdinIsPiped():
				tracks, err = readLines(os.Stdin)
				source = "stdin"
			default:
				return usageError{msg: "Nothing to import. Pass a file, --playlist, or pipe lines on stdin."}
			}
			if err != nil {
				return err
			}

			if name == "" {
				name = defaultHistoryName(args, playlist)
			}
			h, err := svc.ImportHistory(ctx, name, source, tracks)
			if err != nil {
				return err
			}
			if a.out.JSON {
				return a.out.EmitJSON(h.Summary())
			}
			a.out.Success(fmt.Sprintf("Stored %d tracks as %s (%s)", len(h.Tracks), h.Name, h.ID))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "history name (defaults to the file name)")
	cmd.Flags().StringVar(&playlist, "playlist", "", "import a catalog playlist instead of a file")
	return cmd
}

func defaultHistoryName(args []string, playlist string) string {
	switch {
	case len(args) == 1:
		return strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	case playlist != "":
		return "playlist"
	default:
		return "stdin"
	}
}

func newHistoryShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a stored history's tracks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			svc, err := a.newService(cmd.Context(), serviceDeps{storage: true})
			if err != nil {
				return err
			}
			h, err := svc.GetHistory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if a.out.JSON {
				return a.out.EmitJSON(h)
			}
			a.out.Info(fmt.Sprintf("%s (%s, %d tracks)", h.Name, h.Source, len(h.Tracks)))
			return a.out.Tracks(h.Tracks)
		},
	}
}

func newHistoryListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored histories, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			svc, err := a.newService(cmd.Context(), serviceDeps{storage: true})
			if err != nil {
				return err
			}
			rows, err := svc.ListHistories(cmd.Context())
			if err != nil {
				return err
			}
			return a.out.Histories(rows)
		},
	}
}
