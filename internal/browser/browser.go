// Package browser wraps headless-browser session lifecycle behind a narrow
// capability interface, so everything above it (walker, extractors) can be
// exercised against a static document source instead of a live engine.
package browser

import (
	"context"
	"time"
)

// Session is the capability surface the scrape pipeline needs from a browser.
//
// WaitFor is the only polling operation: it reports absence with false, not
// an error. Callers must treat a missing section as a signal, not a failure.
// Indexed operations (TextAt, ClickAt...) address the i-th match of a
// selector at call time; the pipeline re-reads by position after every
// back-navigation instead of holding node references.
type Session interface {
	// Navigate opens a URL in the session
	Navigate(ctx context.Context, url string) error

	// WaitFor polls for a visible match of sel in fixed intervals up to
	// timeout. Expiry returns false, never an error.
	WaitFor(ctx context.Context, sel string, timeout time.Duration) bool

	// Count returns the number of current matches of sel
	Count(ctx context.Context, sel string) (int, error)

	// Text returns the visible text of the first match of sel, "" when absent
	Text(ctx context.Context, sel string) (string, error)

	// TextAt returns the visible text of the i-th match of sel
	TextAt(ctx context.Context, sel string, i int) (string, error)

	// Attr returns an attribute of the first match of sel, "" when absent
	Attr(ctx context.Context, sel, name string) (string, error)

	// AttrAt returns an attribute of the i-th match of sel
	AttrAt(ctx context.Context, sel, name string, i int) (string, error)

	// HTML returns the inner HTML of the first match of sel
	HTML(ctx context.Context, sel string) (string, error)

	// Click clicks the first match of sel
	Click(ctx context.Context, sel string) error

	// ClickAt clicks the i-th match of sel
	ClickAt(ctx context.Context, sel string, i int) error

	// GoBack navigates back in session history
	GoBack(ctx context.Context) error

	// Screenshot captures a full-page screenshot, for local audit artifacts
	Screenshot(ctx context.Context) ([]byte, error)

	// Close releases the session
	Close() error
}

// pollInterval is the fixed WaitFor polling step
const pollInterval = 500 * time.Millisecond
