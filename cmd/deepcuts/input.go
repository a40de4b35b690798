package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
)

// readLines parses "Artist - Title" rows, one per line.
func readLines(r io.Reader) ([]domain.Track, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return domain.ParseTrackLines(lines), nil
}

// readCSV joins each row's cells with " - " and parses the result as a
// track line, so two-column Artist,Title files and single-column
// "Artist - Title" files both work.
func readCSV(r io.Reader) ([]domain.Track, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var lines []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		cells := make([]string, 0, len(record))
		for _, c := range record {
			if c = strings.TrimSpace(c); c != "" {
				cells = append(cells, c)
			}
		}
		lines = append(lines, strings.Join(cells, " - "))
	}
	return domain.ParseTrackLines(lines), nil
}

func readFile(path string, parse func(io.Reader) ([]domain.Track, error)) ([]domain.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f)
}

// stdinIsPiped reports whether stdin carries data rather than a terminal.
func stdinIsPiped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}
