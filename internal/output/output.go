// Package output renders CLI results as coloured text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
)

type Options struct {
	JSON    bool
	Quiet   bool
	NoColor bool
	Out     io.Writer
	Err     io.Writer
}

type Output struct {
	JSON  bool
	Quiet bool

	out io.Writer
	err io.Writer

	green  *color.Color
	yellow *color.Color
	gray   *color.Color
	bold   *color.Color
}

func New(opts Options) *Output {
	if opts.NoColor {
		color.NoColor = true
	}
	out, errw := opts.Out, opts.Err
	if out == nil {
		out = os.Stdout
	}
	if errw == nil {
		errw = os.Stderr
	}
	return &Output{
		JSON:   opts.JSON,
		Quiet:  opts.Quiet,
		out:    out,
		err:    errw,
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		gray:   color.New(color.FgHiBlack),
		bold:   color.New(color.Bold),
	}
}

// Info writes progress text to stderr so stdout stays pipeable.
func (o *Output) Info(msg string) {
	if o.JSON || o.Quiet {
		return
	}
	fmt.Fprintln(o.err, msg)
}

func (o *Output) Success(msg string) {
	if o.JSON || o.Quiet {
		return
	}
	fmt.Fprintln(o.out, o.green.Sprint(msg))
}

// Raw writes text regardless of mode; used for dry-run prompts.
func (o *Output) Raw(text string) {
	fmt.Fprintln(o.out, text)
}

func (o *Output) EmitJSON(v any) error {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Result prints a suggestion result.
func (o *Output) Result(r domain.SuggestionResult) error {
	if o.JSON {
		return o.EmitJSON(r)
	}

	fmt.Fprintln(o.out, o.bold.Sprint(r.PlaylistName))
	fmt.Fprintln(o.out, o.gray.Sprint(r.UserAnalysis))
	if r.UserPersonality != "" {
		fmt.Fprintf(o.out, "\n%s %s\n", o.bold.Sprint("Persona:"), r.UserPersonality)
	}
	if r.LogicApproach != "" {
		fmt.Fprintf(o.out, "%s %s\n", o.bold.Sprint("Logic:"), r.LogicApproach)
	}
	fmt.Fprintln(o.out)

	if len(r.Suggestions) == 0 {
		fmt.Fprintln(o.out, o.yellow.Sprint("No suggestions could be parsed from the reply."))
	}
	for i, s := range r.Suggestions {
		fmt.Fprintf(o.out, "%2d. %s - %s (%s) %s\n", i+1, o.green.Sprint(s.Artist), s.Title, s.Year,
			o.gray.Sprintf("[obscurity %d/10, weirdness %d/10]", s.Obscurity, s.Weirdness))
		if s.Rationale != "" {
			fmt.Fprintf(o.out, "    %s\n", s.Rationale)
		}
		if s.Match != nil && s.Match.URL != "" {
			fmt.Fprintf(o.out, "    %s\n", o.gray.Sprint(s.Match.URL))
		}
	}

	if r.FutureAdaptation != "" {
		fmt.Fprintf(o.out, "\n%s %s\n", o.bold.Sprint("Next time:"), r.FutureAdaptation)
	}
	return nil
}

// Tracks prints normalized tracks as "artist - title" rows.
func (o *Output) Tracks(tracks []domain.Track) error {
	if o.JSON {
		return o.EmitJSON(map[string]any{"tracks": tracks})
	}
	for _, t := range tracks {
		line := fmt.Sprintf("%s - %s", t.DisplayArtist(), t.DisplayTitle())
		if t.Year > 0 {
			line += o.gray.Sprintf(" (%d)", t.Year)
		}
		fmt.Fprintln(o.out, line)
	}
	return nil
}

// Histories prints stored history summaries.
func (o *Output) Histories(rows []domain.HistorySummary) error {
	if o.JSON {
		return o.EmitJSON(rows)
	}
	if len(rows) == 0 {
		o.Info("No stored histories.")
		return nil
	}
	for _, h := range rows {
		fmt.Fprintf(o.out, "%s  %s  %s\n", o.gray.Sprint(h.ID), o.bold.Sprint(h.Name),
			strings.TrimSpace(fmt.Sprintf("%d tracks %s", h.TrackCount, h.Source)))
	}
	return nil
}
