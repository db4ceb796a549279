package importer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vreeburg/warehouse-dashboard/internal/importer"
)

func TestRun_CountsAlwaysSumToN(t *testing.T) {
	tests := []struct {
		name         string
		candidates   []string
		failOn       map[string]bool
		wantImported int
		wantFailed   int
	}{
		{
			name:         "all_succeed",
			candidates:   []string{"a", "b", "c"},
			failOn:       map[string]bool{},
			wantImported: 3,
			wantFailed:   0,
		},
		{
			name:         "middle_fails",
			candidates:   []string{"a", "b", "c"},
			failOn:       map[string]bool{"b": true},
			wantImported: 2,
			wantFailed:   1,
		},
		{
			name:         "all_fail",
			candidates:   []string{"a", "b", "c"},
			failOn:       map[string]bool{"a": true, "b": true, "c": true},
			wantImported: 0,
			wantFailed:   3,
		},
		{
			name:         "empty_batch",
			candidates:   nil,
			failOn:       map[string]bool{},
			wantImported: 0,
			wantFailed:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := importer.Run(context.Background(), tt.candidates, func(ctx context.Context, c string) error {
				if tt.failOn[c] {
					return errors.New("server rejected row")
				}
				return nil
			})

			assert.Equal(t, tt.wantImported, res.Imported)
			assert.Equal(t, tt.wantFailed, res.Failed)
			assert.Equal(t, len(tt.candidates), res.Imported+res.Failed)
		})
	}
}

func TestRun_IssuesExactlyNRequestsInOrder(t *testing.T) {
	candidates := []int{10, 20, 30, 40}
	var seen []int

	res := importer.Run(context.Background(), candidates, func(ctx context.Context, c int) error {
		seen = append(seen, c)
		if c == 20 {
			return errors.New("boom")
		}
		return nil
	})

	assert.Equal(t, candidates, seen, "every candidate submitted, strictly in order")
	assert.Equal(t, importer.Result{Imported: 3, Failed: 1}, res)
}

func TestRun_NoRetries(t *testing.T) {
	calls := 0
	importer.Run(context.Background(), []int{1}, func(ctx context.Context, c int) error {
		calls++
		return errors.New("always fails")
	})
	assert.Equal(t, 1, calls, "a failed row is never retried")
}

func TestRun_NeverConcurrent(t *testing.T) {
	// The create callback observes its own completion before the next
	// call starts; overlapping calls would trip inFlight.
	inFlight := false
	importer.Run(context.Background(), []int{1, 2, 3}, func(ctx context.Context, c int) error {
		assert.False(t, inFlight, "request issued before previous outcome observed")
		inFlight = true
		defer func() { inFlight = false }()
		return nil
	})
}
