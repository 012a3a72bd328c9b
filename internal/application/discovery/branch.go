package discovery

import (
	"context"

	"github.com/doeshing/codescout/internal/domain"
	"github.com/doeshing/codescout/internal/ports"
)

// AttemptFunc runs the underlying lookup against one candidate branch.
type AttemptFunc func(ctx context.Context, branch string) domain.CommandOutcome

// Resolver retries a lookup across an ordered list of candidate branches.
// Candidates are attempted strictly in order, one at a time; an attempt
// must finish before the next begins.
type Resolver struct {
	Classifier ports.Classifier
	Logger     ports.Logger
}

// Resolve probes each candidate until one succeeds. A NotFound failure
// means the candidate branch does not exist, so probing continues; any
// other classification aborts immediately, because the failure is
// unrelated to branch existence and further guesses cannot change it.
func (r *Resolver) Resolve(ctx context.Context, requested string, candidates []string, attempt AttemptFunc) domain.BranchResolution {
	resolution := domain.BranchResolution{RequestedBranch: requested}
	for _, branch := range candidates {
		outcome := attempt(ctx, branch)
		if !outcome.Result.IsError {
			resolution.Attempts = append(resolution.Attempts, domain.BranchAttempt{Branch: branch})
			resolution.UsedBranch = branch
			resolution.Succeeded = true
			resolution.FellBack = requested != "" && branch != requested
			resolution.Result = outcome.Result
			if resolution.FellBack && r.Logger != nil {
				r.Logger.Info("branch fallback", map[string]interface{}{
					"requested": requested,
					"used":      branch,
				})
			}
			return resolution
		}

		classification := r.Classifier.Classify(outcome)
		resolution.Attempts = append(resolution.Attempts, domain.BranchAttempt{
			Branch:         branch,
			Classification: classification,
		})
		resolution.Result = outcome.Result
		if classification != domain.ClassNotFound {
			return resolution
		}
	}
	return resolution
}
