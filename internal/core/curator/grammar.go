package curator

import (
	"fmt"
	"regexp"
)

// Line prefixes of the reply grammar. Compose asks for them and Parse reads them.
const (
	personaPrefix = "PERSONA:"
	logicPrefix   = "LOGIC:"
	futurePrefix  = "FUTURE:"
	songPrefix    = "SONG"

	songTemplate = "SONG: Artist - Title (Year) [Obscurity: X/10, Weirdness: Y/10] (Rationale)"
)

// rationaleGroup captures the parenthesised reason up to its matching close,
// allowing one level of nested parentheses. Text after it is ignored.
const rationaleGroup = `\(((?:[^()]|\([^()]*\))*)\)`

// songPatterns are tried in order. The spaced separator goes first so that
// hyphenated artists ("Jay-Z - Song") split on the right dash.
var songPatterns = []*regexp.Regexp{
	regexp.MustCompile(`SONG:\s*(.+?)\s+-\s+(.+?)\s*\((\d{4})\)\s*\[Obscurity:\s*(\d+)/10,\s*Weirdness:\s*(\d+)/10\]\s*` + rationaleGroup),
	regexp.MustCompile(`SONG:\s*(.+?)\s*-\s*(.+?)\s*\((\d{4})\)\s*\[Obscurity:\s*(\d+)/10,\s*Weirdness:\s*(\d+)/10\]\s*` + rationaleGroup),
}

// FormatSongLine renders a suggestion in the reply grammar.
func FormatSongLine(artist, title, year string, obscurity, weirdness int, rationale string) string {
	return fmt.Sprintf("SONG: %s - %s (%s) [Obscurity: %d/10, Weirdness: %d/10] (%s)",
		artist, title, year, obscurity, weirdness, rationale)
}
