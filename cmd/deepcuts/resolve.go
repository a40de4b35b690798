package main

import (
	"github.com/spf13/cobra"
)

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <playlist-url>",
		Short: "Print the tracks of a catalog playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			svc, err := a.newService(cmd.Context(), serviceDeps{})
			if err != nil {
				return err
			}
			tracks, err := svc.ResolvePlaylist(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.out.Tracks(tracks)
		},
	}
}
