package worker

import (
	"context"
	"encoding/json"
	"time"

	"edivaldoleitao/tracksave/config"
	"edivaldoleitao/tracksave/internal/browser"
	"edivaldoleitao/tracksave/internal/category"
	"edivaldoleitao/tracksave/internal/scraper"
	"edivaldoleitao/tracksave/internal/store"
	"edivaldoleitao/tracksave/logger"
	"edivaldoleitao/tracksave/services/cache"
	"edivaldoleitao/tracksave/services/publisher"
	"edivaldoleitao/tracksave/services/sink"
)

// SessionFactory opens a fresh browser session for one sweep. Sessions are
// not reused across sweeps; a wedged renderer only costs one interval.
type SessionFactory func() (browser.Session, error)

// ResultSink receives a finished batch
type ResultSink interface {
	Send(ctx context.Context, products []scraper.ScrapedProduct) sink.SendReport
}

// Worker sweeps the configured categories on an interval: walk the listing,
// record price history, publish the batch and hand it to the ingestion API.
// Categories run sequentially; they share one browser session per sweep.
type Worker struct {
	ctx      context.Context
	cfg      *config.Config
	sessions SessionFactory
	history  *store.Store
	cache    cache.CacheService
	pub      publisher.Publisher
	sink     ResultSink
}

// NewWorker creates a new worker
func NewWorker(
	ctx context.Context,
	cfg *config.Config,
	sessions SessionFactory,
	history *store.Store,
	cacheService cache.CacheService,
	pub publisher.Publisher,
	resultSink ResultSink,
) *Worker {
	return &Worker{
		ctx:      ctx,
		cfg:      cfg,
		sessions: sessions,
		history:  history,
		cache:    cacheService,
		pub:      pub,
		sink:     resultSink,
	}
}

// Start runs sweeps until the context is cancelled.
func (w *Worker) Start() error {
	log := logger.ForWorker()
	for {
		start := time.Now()
		w.runOnce()
		log.Info().Dur("elapsed", time.Since(start)).Msg("Sweep finished")

		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		case <-time.After(w.cfg.CrawlInterval):
		}
	}
}

// runOnce performs one sweep over every configured category.
func (w *Worker) runOnce() {
	log := logger.ForWorker()

	session, err := w.sessions()
	if err != nil {
		logger.LogError("worker", err, "Browser session not available, skipping sweep")
		return
	}
	defer session.Close()

	for _, name := range w.cfg.Categories {
		cat, ok := category.Parse(name)
		if !ok {
			log.Warn().Str("category", name).Msg("Unknown category in configuration")
			continue
		}
		if cache.IsBlocked(w.cache, cat.String()) {
			log.Debug().Str("category", cat.String()).Msg("Category inside cooldown, skipped")
			continue
		}
		w.runCategory(session, cat)
	}

	if w.pub != nil {
		if err := w.pub.TrimStreams(); err != nil {
			logger.LogError("worker", err, "Stream trimming failed")
		}
	}
}

// runCategory walks one category and delivers its batch.
func (w *Worker) runCategory(session browser.Session, cat category.Category) {
	log := logger.ForWalker(cat.String())

	walker := scraper.New(session, scraper.KabumSelectors(), scraper.Options{
		Store:     w.cfg.StoreName,
		PageSize:  w.cfg.PageSize,
		PageLimit: w.cfg.PageLimit,
	})

	result, err := walker.Run(w.ctx, cat, w.cfg.ItemLimit)
	if err != nil {
		logger.LogError(cat.String(), err, "Category walk aborted")
		return
	}

	created, priced := 0, 0
	for _, p := range result.Succeeded {
		res, err := w.history.Upsert(p)
		if err != nil {
			logger.LogError(cat.String(), err, "Price history upsert failed for %q", p.Name)
			continue
		}
		if res.Created {
			created++
		}
		if res.PriceAppended {
			priced++
		}
	}
	log.Info().
		Int("scraped", len(result.Succeeded)).
		Int("item_errors", len(result.Failed)).
		Int("new_products", created).
		Int("price_changes", priced).
		Msg("Category recorded")

	if len(result.Succeeded) > 0 {
		w.publishBatch(cat, result.Succeeded)
		w.sink.Send(w.ctx, result.Succeeded)

		if w.cfg.LocalResults {
			sink.WriteArtifacts(w.ctx, w.cfg.ResultsDir, cat.String(), result.Succeeded, session)
		}
	}

	if err := cache.Block(w.cache, cat.String(), w.cfg.BlockTime); err != nil {
		logger.LogError(cat.String(), err, "Cooldown marker not set")
	}
}

// publishBatch puts the whole category batch on the stream as one message.
func (w *Worker) publishBatch(cat category.Category, products []scraper.ScrapedProduct) {
	if w.pub == nil {
		return
	}
	data, err := json.Marshal(products)
	if err != nil {
		logger.LogError(cat.String(), err, "Batch not encodable")
		return
	}
	if err := w.pub.Publish(cat.String(), data); err != nil {
		logger.LogError(cat.String(), err, "Batch not published")
	}
}
