package scraper

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"edivaldoleitao/tracksave/internal/browser"
	"edivaldoleitao/tracksave/internal/category"
	"edivaldoleitao/tracksave/internal/extract"
	"edivaldoleitao/tracksave/internal/specs"
	"edivaldoleitao/tracksave/logger"
	cerr "edivaldoleitao/tracksave/pkg/errors"
)

const (
	// listingWait bounds the wait for product cards after navigation
	listingWait = 15 * time.Second
	// sectionWait bounds the wait for each detail-page section; an absent
	// section is tolerated, extraction proceeds with whatever loaded
	sectionWait = 5 * time.Second
)

// Options tunes a walk. PageSize is the expected full-page card count; a
// shorter page means the listing ran out. Zero PageLimit or item limit means
// unbounded.
type Options struct {
	Store     string
	PageSize  int
	PageLimit int
}

// Walker drives one browser session through a category listing: open the
// listing, visit every card's detail view, extract, come back, paginate.
type Walker struct {
	session   browser.Session
	sel       Selectors
	store     string
	pageSize  int
	pageLimit int
}

// New creates a walker over an open session.
func New(session browser.Session, sel Selectors, opts Options) *Walker {
	return &Walker{
		session:   session,
		sel:       sel,
		store:     opts.Store,
		pageSize:  opts.PageSize,
		pageLimit: opts.PageLimit,
	}
}

// Run walks the category listing and returns every product it could extract.
// Only structural failures return an error: the listing never loading, or the
// session dying. A single item failing is recorded in BatchResult.Failed and
// the walk continues. limit caps the number of items visited, 0 is unbounded.
func (w *Walker) Run(ctx context.Context, cat category.Category, limit int) (BatchResult, error) {
	log := logger.ForWalker(cat.String())
	var result BatchResult

	if err := w.session.Navigate(ctx, cat.ListingURL()); err != nil {
		return result, cerr.NewFatal(cat.String(), "listing navigation failed", err)
	}
	if !w.session.WaitFor(ctx, w.sel.ListingReady, listingWait) {
		return result, cerr.NewFatal(cat.String(), "listing never loaded", nil)
	}

	today := time.Now().Format("2006-01-02")

	for page := 1; ; page++ {
		count, err := w.session.Count(ctx, w.sel.Card)
		if err != nil {
			return result, cerr.NewFatal(cat.String(), "listing card count failed", err)
		}
		log.Info().Int("page", page).Int("cards", count).Msg("Listing page loaded")
		if count == 0 {
			break
		}

		for i := 0; i < count; i++ {
			if limit > 0 && len(result.Succeeded)+len(result.Failed) >= limit {
				return result, nil
			}
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			default:
			}

			cardName, _ := w.session.TextAt(ctx, w.sel.CardName, i)

			product, err := w.scrapeItem(ctx, cat, i, today)
			if err != nil {
				log.Warn().Int("index", i).Str("name", cardName).Err(err).Msg("Item failed")
				result.Failed = append(result.Failed, ItemError{
					Index: i,
					Name:  cardName,
					Brand: extract.Brand(extract.FromText(""), cardName),
					Err:   err,
				})
				continue
			}
			result.Succeeded = append(result.Succeeded, product)
		}

		if !w.nextPage(ctx, count, page) {
			break
		}
	}

	log.Info().
		Int("succeeded", len(result.Succeeded)).
		Int("failed", len(result.Failed)).
		Msg("Category walk finished")
	return result, nil
}

// scrapeItem opens the i-th card's detail view, extracts the product and
// navigates back to the listing. The back navigation runs even when
// extraction fails, so the walk can continue with the next index.
func (w *Walker) scrapeItem(ctx context.Context, cat category.Category, i int, today string) (p ScrapedProduct, err error) {
	name, _ := w.session.TextAt(ctx, w.sel.CardName, i)
	href, _ := w.session.AttrAt(ctx, w.sel.CardLink, "href", i)
	image, _ := w.session.AttrAt(ctx, w.sel.CardImage, "src", i)

	if clickErr := w.session.ClickAt(ctx, w.sel.CardLink, i); clickErr != nil {
		return p, cerr.NewNavigation(cat.String(), fmt.Sprintf("open item %d", i), clickErr)
	}
	defer func() {
		if backErr := w.session.GoBack(ctx); backErr != nil && err == nil {
			err = cerr.NewNavigation(cat.String(), fmt.Sprintf("return from item %d", i), backErr)
		}
		// cards must be re-read by position after coming back
		w.session.WaitFor(ctx, w.sel.ListingReady, listingWait)
	}()

	w.session.WaitFor(ctx, w.sel.DetailPrice, sectionWait)
	w.session.WaitFor(ctx, w.sel.DetailDesc, sectionWait)
	w.session.WaitFor(ctx, w.sel.DetailTech, sectionWait)

	if detailName, _ := w.session.Text(ctx, w.sel.DetailName); detailName != "" {
		name = detailName
	}

	priceText, _ := w.session.Text(ctx, w.sel.DetailPrice)
	value := extract.NormalizePrice(priceText)
	if value == "" {
		return p, cerr.NewExtraction(cat.String(), fmt.Sprintf("item %d (%s): no parseable price", i, name), nil)
	}

	description, _ := w.session.Text(ctx, w.sel.DetailDesc)
	techHTML, _ := w.session.HTML(ctx, w.sel.DetailTech)
	block := extract.FromHTML(techHTML)

	ratingText, _ := w.session.Text(ctx, w.sel.DetailRating)
	outOfStock, _ := w.session.Count(ctx, w.sel.OutOfStock)

	return ScrapedProduct{
		Name:           name,
		Category:       cat,
		Description:    description,
		ImageURL:       image,
		Brand:          extract.Brand(block, name),
		Store:          w.store,
		URL:            absoluteURL(cat.ListingURL(), href),
		Available:      outOfStock == 0,
		Rating:         extract.ParseRating(ratingText),
		Value:          value,
		CollectionDate: today,
		Specs:          specs.Build(cat, block, name),
	}, nil
}

// nextPage decides whether another listing page follows and moves to it.
// Pagination requires a full current page, a present and enabled next
// control, and a page budget not yet exhausted.
func (w *Walker) nextPage(ctx context.Context, count, page int) bool {
	if w.pageSize > 0 && count < w.pageSize {
		return false
	}
	if w.pageLimit > 0 && page >= w.pageLimit {
		return false
	}
	n, err := w.session.Count(ctx, w.sel.Next)
	if err != nil || n == 0 {
		return false
	}
	if disabled, _ := w.session.Count(ctx, w.sel.NextDisabled); disabled > 0 {
		return false
	}
	if err := w.session.Click(ctx, w.sel.Next); err != nil {
		return false
	}
	return w.session.WaitFor(ctx, w.sel.ListingReady, listingWait)
}

// absoluteURL resolves a card href against the listing URL
func absoluteURL(base, href string) string {
	if href == "" {
		return base
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	if ref.IsAbs() {
		return ref.String()
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}
