package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"HTTPRequestsTotal", HTTPRequestsTotal},
		{"HTTPRequestDuration", HTTPRequestDuration},
		{"HTTPRequestsInFlight", HTTPRequestsInFlight},
		{"GeneratorCallsTotal", GeneratorCallsTotal},
		{"GeneratorCallDuration", GeneratorCallDuration},
		{"SongLinesTotal", SongLinesTotal},
		{"CatalogCacheHits", CatalogCacheHits},
		{"CatalogCacheMisses", CatalogCacheMisses},
		{"VerificationsTotal", VerificationsTotal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestSongLinesCounter(t *testing.T) {
	before := testutil.ToFloat64(SongLinesTotal.WithLabelValues("kept"))
	SongLinesTotal.WithLabelValues("kept").Add(3)
	if got := testutil.ToFloat64(SongLinesTotal.WithLabelValues("kept")) - before; got != 3 {
		t.Fatalf("kept delta: got %v, want 3", got)
	}
}
