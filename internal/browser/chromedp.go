package browser

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"edivaldoleitao/tracksave/logger"
	cerr "edivaldoleitao/tracksave/pkg/errors"
)

// ChromeSession drives a real headless Chrome tab through the DevTools
// protocol. One session maps to one tab; the walker runs a whole category
// sweep inside it so browser history (GoBack) stays coherent.
type ChromeSession struct {
	pageCtx     context.Context
	cancelPage  context.CancelFunc
	cancelAlloc context.CancelFunc
}

// browser fingerprint for store pages that gate on automation signals
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// NewChromeSession launches Chrome and opens a fresh tab with pt-BR request
// headers, matching the locale of the pages being scraped.
func NewChromeSession(headless bool) (*ChromeSession, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(userAgent),
		chromedp.WindowSize(1366, 900),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	pageCtx, cancelPage := chromedp.NewContext(allocCtx)

	headers := network.Headers{
		"Accept-Language": "pt-BR,pt;q=0.9,en-US;q=0.8",
	}
	if err := chromedp.Run(pageCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(headers),
	); err != nil {
		cancelPage()
		cancelAlloc()
		return nil, cerr.NewFatal("browser", "launch failed", err)
	}

	logger.Debug("chrome session started (headless=%v)", headless)
	return &ChromeSession{pageCtx: pageCtx, cancelPage: cancelPage, cancelAlloc: cancelAlloc}, nil
}

func (s *ChromeSession) Navigate(ctx context.Context, url string) error {
	if err := chromedp.Run(s.pageCtx, chromedp.Navigate(url)); err != nil {
		return cerr.NewNavigation("browser", fmt.Sprintf("navigate %s", url), err)
	}
	return nil
}

func (s *ChromeSession) WaitFor(ctx context.Context, sel string, timeout time.Duration) bool {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector(%s);
		return !!(el && el.getClientRects().length);
	})()`, strconv.Quote(sel))

	deadline := time.Now().Add(timeout)
	for {
		var visible bool
		if err := chromedp.Run(s.pageCtx, chromedp.Evaluate(js, &visible)); err == nil && visible {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(pollInterval):
		}
	}
}

func (s *ChromeSession) Count(ctx context.Context, sel string) (int, error) {
	js := fmt.Sprintf(`document.querySelectorAll(%s).length`, strconv.Quote(sel))
	var n int
	if err := chromedp.Run(s.pageCtx, chromedp.Evaluate(js, &n)); err != nil {
		return 0, cerr.NewExtraction("browser", fmt.Sprintf("count %s", sel), err)
	}
	return n, nil
}

func (s *ChromeSession) Text(ctx context.Context, sel string) (string, error) {
	return s.TextAt(ctx, sel, 0)
}

func (s *ChromeSession) TextAt(ctx context.Context, sel string, i int) (string, error) {
	js := fmt.Sprintf(`(() => {
		const els = document.querySelectorAll(%s);
		return %d < els.length ? els[%d].innerText : "";
	})()`, strconv.Quote(sel), i, i)
	var text string
	if err := chromedp.Run(s.pageCtx, chromedp.Evaluate(js, &text)); err != nil {
		return "", cerr.NewExtraction("browser", fmt.Sprintf("text %s[%d]", sel, i), err)
	}
	return text, nil
}

func (s *ChromeSession) Attr(ctx context.Context, sel, name string) (string, error) {
	return s.AttrAt(ctx, sel, name, 0)
}

func (s *ChromeSession) AttrAt(ctx context.Context, sel, name string, i int) (string, error) {
	js := fmt.Sprintf(`(() => {
		const els = document.querySelectorAll(%s);
		return %d < els.length ? (els[%d].getAttribute(%s) || "") : "";
	})()`, strconv.Quote(sel), i, i, strconv.Quote(name))
	var value string
	if err := chromedp.Run(s.pageCtx, chromedp.Evaluate(js, &value)); err != nil {
		return "", cerr.NewExtraction("browser", fmt.Sprintf("attr %s[%d].%s", sel, i, name), err)
	}
	return value, nil
}

func (s *ChromeSession) HTML(ctx context.Context, sel string) (string, error) {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector(%s);
		return el ? el.innerHTML : "";
	})()`, strconv.Quote(sel))
	var html string
	if err := chromedp.Run(s.pageCtx, chromedp.Evaluate(js, &html)); err != nil {
		return "", cerr.NewExtraction("browser", fmt.Sprintf("html %s", sel), err)
	}
	return html, nil
}

func (s *ChromeSession) Click(ctx context.Context, sel string) error {
	return s.ClickAt(ctx, sel, 0)
}

func (s *ChromeSession) ClickAt(ctx context.Context, sel string, i int) error {
	js := fmt.Sprintf(`(() => {
		const els = document.querySelectorAll(%s);
		if (%d >= els.length) return false;
		els[%d].click();
		return true;
	})()`, strconv.Quote(sel), i, i)
	var clicked bool
	if err := chromedp.Run(s.pageCtx, chromedp.Evaluate(js, &clicked)); err != nil {
		return cerr.NewNavigation("browser", fmt.Sprintf("click %s[%d]", sel, i), err)
	}
	if !clicked {
		return cerr.NewNavigation("browser", fmt.Sprintf("click %s[%d]: no such element", sel, i), nil)
	}
	return nil
}

func (s *ChromeSession) GoBack(ctx context.Context) error {
	if err := chromedp.Run(s.pageCtx, chromedp.NavigateBack()); err != nil {
		return cerr.NewNavigation("browser", "history back", err)
	}
	return nil
}

func (s *ChromeSession) Screenshot(ctx context.Context) ([]byte, error) {
	var buf []byte
	if err := chromedp.Run(s.pageCtx, chromedp.FullScreenshot(&buf, 90)); err != nil {
		return nil, cerr.NewExtraction("browser", "screenshot", err)
	}
	return buf, nil
}

func (s *ChromeSession) Close() error {
	s.cancelPage()
	s.cancelAlloc()
	return nil
}
