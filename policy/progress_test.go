package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollupProgress(t *testing.T) {
	tests := []struct {
		name         string
		completed    int
		total        int
		wantProgress float64
		wantDone     bool
	}{
		{"nothing done", 0, 4, 0.0, false},
		{"halfway", 2, 4, 0.5, false},
		{"all done", 4, 4, 1.0, true},
		{"no modules published", 0, 0, 0.0, false},
		{"overshoot clamps", 5, 4, 1.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress, done := RollupProgress(tt.completed, tt.total)
			assert.InDelta(t, tt.wantProgress, progress, 1e-9)
			assert.Equal(t, tt.wantDone, done)
		})
	}
}
