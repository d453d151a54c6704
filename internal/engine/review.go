package engine

import (
	"context"
	"io"

	"github.com/declaro/declaro/internal/groups"
	"github.com/declaro/declaro/internal/review"
)

// Review runs the interactive review session over all unmanaged packages.
func (e *Engine) Review(ctx context.Context, term review.Terminal, out io.Writer) error {
	todo, err := e.Unmanaged(ctx)
	if err != nil {
		return err
	}

	r := review.NewReviewer(term, out, groups.FileWriter{})
	return r.Run(ctx, todo, e.groups)
}
