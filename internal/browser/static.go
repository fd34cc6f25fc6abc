package browser

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"edivaldoleitao/tracksave/helpers"
	cerr "edivaldoleitao/tracksave/pkg/errors"
)

// StaticSession implements Session over plain fetched documents. It exists
// for two reasons: walking static mirrors of a store without a browser
// engine, and testing the walker against canned pages. Clicks follow the
// nearest href and GoBack pops a history stack, so the walker's
// click/extract/back loop behaves the same as on the live session.
type StaticSession struct {
	docs    map[string]*goquery.Document
	fetch   func(rawURL string) (*goquery.Document, error)
	current string
	history []string
}

// NewStaticSession returns a session that fetches pages over HTTP with
// browser-like headers.
func NewStaticSession() *StaticSession {
	return &StaticSession{
		docs: make(map[string]*goquery.Document),
		fetch: func(rawURL string) (*goquery.Document, error) {
			body, err := helpers.FetchWithRandomHeaders(rawURL)
			if err != nil {
				return nil, err
			}
			return goquery.NewDocumentFromReader(body)
		},
	}
}

// NewCannedSession returns a session that serves only pre-registered
// documents. Navigating to an unregistered URL fails.
func NewCannedSession() *StaticSession {
	return &StaticSession{docs: make(map[string]*goquery.Document)}
}

// AddPage registers a document for a URL. Invalid HTML is not possible here;
// goquery parses anything into a tree.
func (s *StaticSession) AddPage(rawURL, html string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return err
	}
	s.docs[rawURL] = doc
	return nil
}

func (s *StaticSession) doc() (*goquery.Document, error) {
	if s.current == "" {
		return nil, cerr.NewNavigation("static", "no page loaded", nil)
	}
	return s.docs[s.current], nil
}

func (s *StaticSession) Navigate(ctx context.Context, rawURL string) error {
	if _, ok := s.docs[rawURL]; !ok {
		if s.fetch == nil {
			return cerr.NewNavigation("static", fmt.Sprintf("no page registered for %s", rawURL), nil)
		}
		doc, err := s.fetch(rawURL)
		if err != nil {
			return cerr.NewNavigation("static", fmt.Sprintf("fetch %s", rawURL), err)
		}
		s.docs[rawURL] = doc
	}
	if s.current != "" {
		s.history = append(s.history, s.current)
	}
	s.current = rawURL
	return nil
}

// WaitFor never polls: a static document either has the selector or it
// never will.
func (s *StaticSession) WaitFor(ctx context.Context, sel string, timeout time.Duration) bool {
	doc, err := s.doc()
	if err != nil {
		return false
	}
	return doc.Find(sel).Length() > 0
}

func (s *StaticSession) Count(ctx context.Context, sel string) (int, error) {
	doc, err := s.doc()
	if err != nil {
		return 0, err
	}
	return doc.Find(sel).Length(), nil
}

func (s *StaticSession) Text(ctx context.Context, sel string) (string, error) {
	return s.TextAt(ctx, sel, 0)
}

func (s *StaticSession) TextAt(ctx context.Context, sel string, i int) (string, error) {
	doc, err := s.doc()
	if err != nil {
		return "", err
	}
	return doc.Find(sel).Eq(i).Text(), nil
}

func (s *StaticSession) Attr(ctx context.Context, sel, name string) (string, error) {
	return s.AttrAt(ctx, sel, name, 0)
}

func (s *StaticSession) AttrAt(ctx context.Context, sel, name string, i int) (string, error) {
	doc, err := s.doc()
	if err != nil {
		return "", err
	}
	value, _ := doc.Find(sel).Eq(i).Attr(name)
	return value, nil
}

func (s *StaticSession) HTML(ctx context.Context, sel string) (string, error) {
	doc, err := s.doc()
	if err != nil {
		return "", err
	}
	html, err := doc.Find(sel).First().Html()
	if err != nil {
		return "", cerr.NewExtraction("static", fmt.Sprintf("html %s", sel), err)
	}
	return html, nil
}

func (s *StaticSession) Click(ctx context.Context, sel string) error {
	return s.ClickAt(ctx, sel, 0)
}

// ClickAt follows the href of the i-th match: the element's own, or the
// first one in its descendants, or the closest anchor ancestor.
func (s *StaticSession) ClickAt(ctx context.Context, sel string, i int) error {
	doc, err := s.doc()
	if err != nil {
		return err
	}
	el := doc.Find(sel).Eq(i)
	if el.Length() == 0 {
		return cerr.NewNavigation("static", fmt.Sprintf("click %s[%d]: no such element", sel, i), nil)
	}

	href, ok := el.Attr("href")
	if !ok {
		href, ok = el.Find("a[href]").First().Attr("href")
	}
	if !ok {
		href, ok = el.Closest("a[href]").Attr("href")
	}
	if !ok || href == "" {
		return cerr.NewNavigation("static", fmt.Sprintf("click %s[%d]: no link target", sel, i), nil)
	}

	target, err := s.resolve(href)
	if err != nil {
		return cerr.NewNavigation("static", fmt.Sprintf("click %s[%d]: bad href %q", sel, i, href), err)
	}
	return s.Navigate(ctx, target)
}

func (s *StaticSession) GoBack(ctx context.Context) error {
	if len(s.history) == 0 {
		return cerr.NewNavigation("static", "history empty", nil)
	}
	s.current = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	return nil
}

// Screenshot is not available without a rendering engine.
func (s *StaticSession) Screenshot(ctx context.Context) ([]byte, error) {
	return nil, cerr.NewExtraction("static", "screenshot unsupported", nil)
}

func (s *StaticSession) Close() error {
	s.docs = nil
	s.history = nil
	s.current = ""
	return nil
}

// resolve turns a possibly relative href into an absolute URL against the
// current page.
func (s *StaticSession) resolve(href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	base, err := url.Parse(s.current)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
