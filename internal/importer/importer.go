// Package importer drives batch creation against the remote store: one
// request at a time, in order, never concurrently. Strict sequencing
// keeps server-assigned ids reproducible for a given file.
package importer

import (
	"context"

	"github.com/rs/zerolog/log"
)

// CreateFunc submits one candidate to the remote create endpoint.
type CreateFunc[T any] func(ctx context.Context, candidate T) error

// Result is the final tally of a batch. Imported+Failed always equals
// the number of candidates submitted.
type Result struct {
	Imported int
	Failed   int
}

// Run submits candidates strictly in order. Request i+1 is not issued
// until the outcome of request i is observed. A failed candidate is
// counted and logged, never retried, and never aborts the batch.
func Run[T any](ctx context.Context, candidates []T, create CreateFunc[T]) Result {
	var res Result
	for i, candidate := range candidates {
		if err := create(ctx, candidate); err != nil {
			res.Failed++
			log.Warn().Err(err).Int("row", i+1).Msg("importer: create failed, continuing")
			continue
		}
		res.Imported++
	}
	return res
}
