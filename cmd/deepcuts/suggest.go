package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
	"github.com/ewilliams-labs/deepcuts/internal/core/services"
)

type suggestFlags struct {
	playlist  string
	csvPath   string
	tracks    string
	history   string
	noInput   bool
	dryRun    bool
	verify    bool
	obscurity int
	weirdness int
	songCount int
	decade    string
	keywords  string
	persona   string
	region    string
}

func newSuggestCmd(a *app) *cobra.Command {
	var f suggestFlags

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Generate song suggestions from a listening history",
		Example: `  deepcuts suggest --playlist https://open.spotify.com/playlist/37i9dQZF1DX
  deepcuts suggest --csv history.csv --obscurity 9 --weirdness 7
  printf 'Can - Vitamin C\nNeu! - Hallogallo\n' | deepcuts suggest --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.suggest(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.playlist, "playlist", "", "catalog playlist URL")
	fl.StringVar(&f.csvPath, "csv", "", "CSV file of tracks")
	fl.StringVar(&f.tracks, "tracks", "", "file of \"Artist - Title\" lines")
	fl.StringVar(&f.history, "history", "", "stored history id")
	fl.BoolVar(&f.noInput, "no-input", false, "do not read tracks from stdin")
	fl.BoolVar(&f.dryRun, "dry-run", false, "print the instruction instead of calling the generator")
	fl.BoolVar(&f.verify, "verify", false, "look up each suggestion in the catalog")
	fl.IntVar(&f.obscurity, "obscurity", 5, "obscurity level 1-10")
	fl.IntVar(&f.weirdness, "weirdness", 5, "weirdness level 1-10")
	fl.IntVarP(&f.songCount, "count", "n", domain.DefaultSongCount, "number of songs")
	fl.StringVar(&f.decade, "decade", domain.AnyDecade, "era preference, e.g. 1970s")
	fl.StringVar(&f.keywords, "keywords", "", "mood keywords")
	fl.StringVar(&f.persona, "persona", "", "curator persona tag")
	fl.StringVar(&f.region, "region", "", "region tag")
	return cmd
}

func (a *app) suggest(cmd *cobra.Command, f suggestFlags) error {
	defer a.close()
	ctx := cmd.Context()

	var tracks []domain.Track
	if f.csvPath != "" {
		fromCSV, err := readFile(f.csvPath, readCSV)
		if err != nil {
			return err
		}
		tracks = append(tracks, fromCSV...)
	}
	if f.tracks != "" {
		fromFile, err := readFile(f.tracks, readLines)
		if err != nil {
			return err
		}
		tracks = append(tracks, fromFile...)
	}
	if len(tracks) == 0 && f.playlist == "" && f.history == "" && !f.noInput && stdinIsPiped() {
		fromStdin, err := readLines(os.Stdin)
		if err != nil {
			return err
		}
		tracks = fromStdin
	}
	if len(tracks) == 0 && f.playlist == "" && f.history == "" && !f.dryRun {
		return usageError{msg: "No tracks given. Use --playlist, --csv, --tracks, --history, or pipe \"Artist - Title\" lines on stdin."}
	}

	svc, err := a.newService(ctx, serviceDeps{
		storage:   f.history != "",
		generator: !f.dryRun,
		verify:    f.verify && !f.dryRun,
	})
	if err != nil {
		return err
	}

	in := services.SuggestInput{
		Request: domain.SuggestionRequest{
			Obscurity: f.obscurity,
			Weirdness: f.weirdness,
			Decade:    f.decade,
			Keywords:  f.keywords,
			Persona:   f.persona,
			SongCount: f.songCount,
			Region:    f.region,
			Verify:    f.verify,
		},
		Tracks:      tracks,
		HistoryID:   f.history,
		PlaylistURL: f.playlist,
	}

	if f.dryRun {
		prompt, err := svc.Prompt(ctx, in)
		if err != nil {
			return err
		}
		if a.out.JSON {
			return a.out.EmitJSON(map[string]any{"prompt": prompt})
		}
		a.out.Raw(prompt)
		return nil
	}

	a.out.Info("Asking the " + a.cfg.Generator.Provider + " curator...")
	result, err := svc.Suggest(ctx, in)
	if err != nil {
		return err
	}
	return a.out.Result(result)
}
