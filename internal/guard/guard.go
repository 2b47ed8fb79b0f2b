// Package guard implements the request guards that gate protected routes.
//
// A Guard inspects (and may annotate) a Request and either returns nil to let
// the request proceed or an error to reject it. Guards are composed into a
// Pipeline which runs them in declared order and stops at the first
// rejection. Rejections are *errorutil.DomainError values carrying the HTTP
// status and message; any other error is an internal fault.
package guard

import "context"

// Guard is a single step in a request pipeline. A nil return means proceed.
type Guard func(ctx context.Context, req *Request) error

// Pipeline is an ordered list of guards.
type Pipeline []Guard

// Run applies each guard in order and returns the first rejection.
func (p Pipeline) Run(ctx context.Context, req *Request) error {
	for _, g := range p {
		if err := g(ctx, req); err != nil {
			return err
		}
	}
	return nil
}
