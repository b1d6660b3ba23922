package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		skip      int
		limit     int
		wantSkip  int
		wantLimit int
	}{
		{"defaults", 0, 100, 0, 100},
		{"negative skip", -3, 10, 0, 10},
		{"zero limit", 5, 0, 5, DefaultLimit},
		{"negative limit", 5, -1, 5, DefaultLimit},
		{"oversized limit", 0, 5000, 0, DefaultLimit},
		{"passthrough", 20, 50, 20, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, limit := Clamp(tt.skip, tt.limit)
			require.Equal(t, tt.wantSkip, skip)
			require.Equal(t, tt.wantLimit, limit)
		})
	}
}
