package cleaner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gauthierbraillon/reportmix/internal/aggregator"
	"github.com/gauthierbraillon/reportmix/internal/filter"
	"github.com/gauthierbraillon/reportmix/internal/social"
	"github.com/gauthierbraillon/reportmix/internal/timestamp"
)

// Cleaner turns raw platform results into summaries and reports. It keeps no
// state between calls.
type Cleaner struct {
	registry Registry
	norm     *timestamp.Normalizer
	log      logrus.FieldLogger
	parallel bool
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Cleaner) {
		c.log = log
	}
}

// WithNormalizer sets the timestamp normalizer, which also fixes the
// location of date range days.
func WithNormalizer(norm *timestamp.Normalizer) Option {
	return func(c *Cleaner) {
		c.norm = norm
	}
}

// WithParallel processes platforms concurrently in CleanAll.
func WithParallel(parallel bool) Option {
	return func(c *Cleaner) {
		c.parallel = parallel
	}
}

// WithRegistry replaces the default platform mappers.
func WithRegistry(r Registry) Option {
	return func(c *Cleaner) {
		c.registry = r
	}
}

// New creates a Cleaner with every supported platform registered.
func New(opts ...Option) *Cleaner {
	c := &Cleaner{
		registry: DefaultRegistry(),
		norm:     timestamp.New(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		discard := logrus.New()
		discard.SetLevel(logrus.PanicLevel)
		c.log = discard
	}
	return c
}

// CleanPlatform cleans one raw result. The result's own date range wins over
// fallback. It returns nil for an unknown platform or a result without data.
// A result carrying a fetch error yields an empty summary with that error.
func (c *Cleaner) CleanPlatform(raw social.RawResult, fallback *social.DateRange) *social.Summary {
	return c.cleanPlatform(c.log, raw, fallback)
}

func (c *Cleaner) cleanPlatform(log logrus.FieldLogger, raw social.RawResult, fallback *social.DateRange) *social.Summary {
	mapper, ok := c.registry.Lookup(raw.Platform)
	if !ok {
		log.WithField("platform", string(raw.Platform)).Warn("unknown platform, skipping")
		return nil
	}

	name := raw.Platform.DisplayName()
	entry := log.WithField("platform", name)

	dr := raw.DateRange
	if dr == nil {
		dr = fallback
	}

	if raw.Error != "" {
		entry.WithField("error", raw.Error).Warn("platform fetch failed, skipping cleaning")
		return aggregator.Summarize(raw.Platform, mapper.Vocabulary(), social.Batch{Username: raw.Username, Error: raw.Error}, dr)
	}
	if raw.Data == nil {
		entry.Debug("no data for platform")
		return nil
	}

	batch := mapper.Map(raw.Data, raw.Username)
	if batch.Error != "" {
		entry.WithField("error", batch.Error).Warn("platform data rejected")
		return aggregator.Summarize(raw.Platform, mapper.Vocabulary(), social.Batch{Username: batch.Username, Error: batch.Error}, dr)
	}

	f := filter.New(c.norm, entry)
	entry.WithField("records", len(raw.Data)).Debug("cleaning platform data")
	batch.Posts = f.Deduplicate(f.ByDateRange(batch.Posts, dr), name)

	summary := aggregator.Summarize(raw.Platform, mapper.Vocabulary(), batch, dr)
	entry.WithField("posts", summary.TotalPosts).Debug("platform cleaned")
	return summary
}

// CleanAll cleans every raw result and returns the summaries in input order.
// Entries are nil where CleanPlatform returns nil. The only error is a
// cancelled context.
func (c *Cleaner) CleanAll(ctx context.Context, raws []social.RawResult, fallback *social.DateRange) ([]*social.Summary, error) {
	log := c.log.WithField("run_id", uuid.NewString())
	log.WithFields(logrus.Fields{"platforms": len(raws), "parallel": c.parallel}).Debug("cleaning platforms")

	summaries := make([]*social.Summary, len(raws))

	if !c.parallel {
		for i, raw := range raws {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("failed to clean platforms: %w", err)
			}
			summaries[i] = c.cleanPlatform(log, raw, fallback)
		}
		return summaries, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, raw := range raws {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summaries[i] = c.cleanPlatform(log, raw, fallback)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to clean platforms: %w", err)
	}
	return summaries, nil
}

// Clean cleans every raw result and combines the summaries into a report.
func (c *Cleaner) Clean(ctx context.Context, raws []social.RawResult, fallback *social.DateRange) (*aggregator.Report, error) {
	summaries, err := c.CleanAll(ctx, raws, fallback)
	if err != nil {
		return nil, err
	}
	return aggregator.Combine(summaries), nil
}

// CleanStored re-derives a report from stored raw results with the current
// mapping logic. Stored fetch errors are kept as error entries and therefore
// left out of the report.
func (c *Cleaner) CleanStored(ctx context.Context, raws []social.RawResult) (*aggregator.Report, error) {
	summaries, err := c.CleanAll(ctx, raws, nil)
	if err != nil {
		return nil, err
	}
	for i, raw := range raws {
		if raw.Error != "" {
			summaries[i] = &social.Summary{Platform: string(raw.Platform), Error: raw.Error}
		}
	}
	return aggregator.Combine(summaries), nil
}
