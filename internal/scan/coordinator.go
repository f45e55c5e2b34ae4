package scan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/exposcan/exposcan/internal/aggregate"
	"github.com/exposcan/exposcan/internal/model"
)

// BreachLookup looks up breach records for an email address.
// Its error aborts the pass; the other sources degrade silently.
type BreachLookup interface {
	Lookup(ctx context.Context, email string) ([]model.BreachRecord, error)
}

// ReputationLookup looks up the reputation of an email address.
type ReputationLookup interface {
	Lookup(ctx context.Context, email string) *model.EmailReputation
}

// UsernameLookup searches social networks for a username.
type UsernameLookup interface {
	Lookup(ctx context.Context, username string) *model.UsernamePresence
}

// SocialSearch searches social networks for mentions of an identity.
type SocialSearch interface {
	Search(ctx context.Context, name, email string) *model.SocialMentions
}

// WebSearch searches the web for pages mentioning an identity.
type WebSearch interface {
	Search(ctx context.Context, name, email, location string) []model.WebResult
}

// Sources bundles the five adapters a scan fans out to.
type Sources struct {
	Breach     BreachLookup
	Reputation ReputationLookup
	Username   UsernameLookup
	Social     SocialSearch
	Web        WebSearch
}

// Progress is called after each pass settles. done counts settled passes
// (including failed ones), total is the number of addresses, and failed
// reports whether this pass was skipped. Observability only: the callback
// must not assume it influences the scan result.
type Progress func(email string, done, total int, failed bool)

// Coordinator runs exposure scans.
//
// Design decision: Addresses are scanned strictly sequentially with a rate
// limiter between passes, while the sources within a pass run concurrently,
// because:
//  1. The per-pass fan-out is what latency actually depends on
//  2. Scanning addresses in input order keeps merge results deterministic
//  3. Pacing passes bounds outbound load on five third-party services
type Coordinator struct {
	sources Sources

	// limiter paces the start of each pass.
	limiter *rate.Limiter

	logger   *slog.Logger
	progress Progress
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithPassInterval sets the minimum interval between pass starts.
// The default is one second.
func WithPassInterval(interval time.Duration) CoordinatorOption {
	return func(c *Coordinator) {
		c.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
}

// WithLogger sets the logger scan progress and pass failures are
// recorded on.
func WithLogger(logger *slog.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// WithProgress sets the per-pass progress callback.
func WithProgress(progress Progress) CoordinatorOption {
	return func(c *Coordinator) {
		c.progress = progress
	}
}

// NewCoordinator creates a scan coordinator over the given sources.
func NewCoordinator(sources Sources, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		sources: sources,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Scan runs one pass per input email address, in input order, and merges
// the results.
//
// A pass fails only when the breach source fails; the failed address is
// recorded in EmailsFailed and scanning continues. Scan returns an error
// only for invalid input, context cancellation, or when every pass failed.
func (c *Coordinator) Scan(ctx context.Context, input model.UserInput) (*model.AggregatedScan, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scan input: %w", err)
	}

	emails := input.Emails()

	var (
		acc    model.AggregatedScan
		merged int
		failed []string
	)

	for _, email := range emails {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("scan cancelled: %w", err)
		}

		pass, err := c.runPass(ctx, input, email)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("scan cancelled: %w", ctx.Err())
			}
			c.logger.WarnContext(ctx, "scan pass failed, skipping address", "email", email, "error", err)
			failed = append(failed, email)
			c.reportProgress(email, merged+len(failed), len(emails), true)
			continue
		}

		next := aggregate.Scan(pass)
		if merged == 0 {
			acc = next
		} else {
			acc = Merge(acc, next, merged)
		}
		merged++

		c.logger.InfoContext(ctx, "scan pass complete",
			"email", email,
			"breaches", len(pass.Breaches),
			"web_results", len(pass.WebResults))
		c.reportProgress(email, merged+len(failed), len(emails), false)
	}

	if merged == 0 {
		return nil, ErrAllScansFailed
	}

	acc.EmailsFailed = failed
	acc = Finalize(acc)
	return &acc, nil
}

// runPass fans out all five sources for one address and waits for joint
// settlement. Each goroutine writes a distinct PassResult field, so no
// synchronization beyond the errgroup wait is needed.
func (c *Coordinator) runPass(ctx context.Context, input model.UserInput, email string) (model.PassResult, error) {
	pass := model.PassResult{Email: email}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		breaches, err := c.sources.Breach.Lookup(gctx, email)
		if err != nil {
			return fmt.Errorf("breach source: %w", err)
		}
		pass.Breaches = breaches
		return nil
	})
	g.Go(func() error {
		pass.Reputation = c.sources.Reputation.Lookup(gctx, email)
		return nil
	})
	g.Go(func() error {
		pass.Presence = c.sources.Username.Lookup(gctx, model.Username(email))
		return nil
	})
	g.Go(func() error {
		pass.Social = c.sources.Social.Search(gctx, input.Name, email)
		return nil
	})
	g.Go(func() error {
		pass.WebResults = c.sources.Web.Search(gctx, input.Name, email, input.Location)
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.PassResult{Email: email}, err
	}
	return pass, nil
}

func (c *Coordinator) reportProgress(email string, done, total int, failed bool) {
	if c.progress == nil {
		return
	}
	c.progress(email, done, total, failed)
}
