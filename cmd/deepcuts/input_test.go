package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
)

func TestReadLines(t *testing.T) {
	in := "Can - Vitamin C\n\n  Neu! - Hallogallo  \nUntitled Jam\n"

	got, err := readLines(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []domain.Track{
		{Artist: "Can", Title: "Vitamin C"},
		{Artist: "Neu!", Title: "Hallogallo"},
		{Title: "Untitled Jam"},
	}, got)
}

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []domain.Track
	}{
		{
			name: "two columns",
			in:   "Can,Vitamin C\nFaust, Krautrock\n",
			want: []domain.Track{{Artist: "Can", Title: "Vitamin C"}, {Artist: "Faust", Title: "Krautrock"}},
		},
		{
			name: "single column with separator",
			in:   "\"Cluster - Hollywood\"\n",
			want: []domain.Track{{Artist: "Cluster", Title: "Hollywood"}},
		},
		{
			name: "blank rows and ragged records",
			in:   "Can,Mother Sky,1970\n,,\n",
			want: []domain.Track{{Artist: "Can", Title: "Mother Sky - 1970"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := readCSV(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadCSV_Malformed(t *testing.T) {
	_, err := readCSV(strings.NewReader("\"unterminated,row\n"))
	assert.Error(t, err)
}
