package curator

import (
	"strconv"
	"strings"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
)

const maxScale = 10

type lineKind int

const (
	lineUnrecognized lineKind = iota
	linePersona
	lineLogic
	lineFuture
	lineSong
)

// ParseStats reports how many SONG lines were kept and dropped.
type ParseStats struct {
	Kept      int
	Dropped   int
	Truncated int
}

// Parse reads a raw reply and keeps at most songCount suggestions
// (songCount <= 0 keeps all). Malformed SONG lines are dropped without
// failing the batch.
func Parse(raw string, songCount int) domain.ParsedResponse {
	parsed, _ := ParseWithStats(raw, songCount)
	return parsed
}

// ParseWithStats is Parse plus line accounting for metrics.
func ParseWithStats(raw string, songCount int) (domain.ParsedResponse, ParseStats) {
	var (
		out     = domain.ParsedResponse{Suggestions: []domain.Suggestion{}}
		stats   ParseStats
		seen    = map[string]struct{}{}
		persona bool
		logic   bool
		future  bool
	)

	// Prefixes must start the line; only trailing whitespace and CR are removed.
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, " \t\r")
		kind, rest := classifyLine(line)
		switch kind {
		case linePersona:
			if !persona {
				out.Persona, persona = rest, true
			}
		case lineLogic:
			if !logic {
				out.Logic, logic = rest, true
			}
		case lineFuture:
			if !future {
				out.Future, future = rest, true
			}
		case lineSong:
			s, ok := parseSongLine(line)
			if !ok {
				stats.Dropped++
				continue
			}
			key := strings.ToLower(s.Artist) + "\x00" + strings.ToLower(s.Title)
			if _, dup := seen[key]; dup {
				stats.Dropped++
				continue
			}
			seen[key] = struct{}{}
			out.Suggestions = append(out.Suggestions, s)
		}
	}

	if songCount > 0 && len(out.Suggestions) > songCount {
		stats.Truncated = len(out.Suggestions) - songCount
		out.Suggestions = out.Suggestions[:songCount]
	}
	stats.Kept = len(out.Suggestions)
	return out, stats
}

func classifyLine(line string) (lineKind, string) {
	switch {
	case strings.HasPrefix(line, personaPrefix):
		return linePersona, strings.TrimSpace(strings.TrimPrefix(line, personaPrefix))
	case strings.HasPrefix(line, logicPrefix):
		return lineLogic, strings.TrimSpace(strings.TrimPrefix(line, logicPrefix))
	case strings.HasPrefix(line, futurePrefix):
		return lineFuture, strings.TrimSpace(strings.TrimPrefix(line, futurePrefix))
	case strings.HasPrefix(line, songPrefix):
		return lineSong, line
	default:
		return lineUnrecognized, ""
	}
}

func parseSongLine(line string) (domain.Suggestion, bool) {
	var m []string
	for _, p := range songPatterns {
		if m = p.FindStringSubmatch(line); m != nil {
			break
		}
	}
	if m == nil {
		return domain.Suggestion{}, false
	}
	obscurity, ok := parseScale(m[4])
	if !ok {
		return domain.Suggestion{}, false
	}
	weirdness, ok := parseScale(m[5])
	if !ok {
		return domain.Suggestion{}, false
	}
	s := domain.Suggestion{
		Artist:    strings.TrimSpace(m[1]),
		Title:     strings.TrimSpace(m[2]),
		Year:      m[3],
		Obscurity: obscurity,
		Weirdness: weirdness,
		Rationale: strings.TrimSpace(m[6]),
	}
	if s.Artist == "" || s.Title == "" {
		return domain.Suggestion{}, false
	}
	return s, true
}

func parseScale(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > maxScale {
		return 0, false
	}
	return n, true
}
