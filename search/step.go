package search

import "context"

// ContextStep wraps next so the search stops once ctx is done. The engine
// never polls anything itself; cancellation is the observer's decision.
func ContextStep(ctx context.Context, next StepFunc) StepFunc {
	return func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if next != nil {
			return next()
		}

		return nil
	}
}

// Chain runs the given observers in order and stops at the first error.
// Nil entries are skipped.
func Chain(steps ...StepFunc) StepFunc {
	return func() error {
		for _, s := range steps {
			if s == nil {
				continue
			}
			if err := s(); err != nil {
				return err
			}
		}

		return nil
	}
}
