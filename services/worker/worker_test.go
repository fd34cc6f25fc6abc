package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edivaldoleitao/tracksave/config"
	"edivaldoleitao/tracksave/internal/browser"
	"edivaldoleitao/tracksave/internal/category"
	"edivaldoleitao/tracksave/internal/scraper"
	"edivaldoleitao/tracksave/internal/store"
	"edivaldoleitao/tracksave/services/publisher"
	"edivaldoleitao/tracksave/services/sink"
)

// MockPublisher implements the publisher.Publisher interface for testing
type MockPublisher struct {
	mu       sync.Mutex
	messages map[string][][]byte
	trimmed  bool
}

var _ publisher.Publisher = (*MockPublisher)(nil)

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{messages: make(map[string][][]byte)}
}

func (m *MockPublisher) Publish(key string, message []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(message))
	copy(cp, message)
	m.messages[key] = append(m.messages[key], cp)
	return nil
}

func (m *MockPublisher) TrimStreams() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trimmed = true
	return nil
}

func (m *MockPublisher) Close() error { return nil }

// MockSink records delivered batches
type MockSink struct {
	batches [][]scraper.ScrapedProduct
}

func (m *MockSink) Send(_ context.Context, products []scraper.ScrapedProduct) sink.SendReport {
	m.batches = append(m.batches, products)
	return sink.SendReport{Sent: len(products)}
}

// mapCache is an in-memory cache.CacheService
type mapCache struct {
	values map[string][]byte
}

func (m *mapCache) Get(key string) ([]byte, error) {
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return nil, assert.AnError
}

func (m *mapCache) Set(key string, value []byte, _ time.Duration) error {
	m.values[key] = value
	return nil
}

func (m *mapCache) Delete(key string) error {
	delete(m.values, key)
	return nil
}

func mouseListingSession(t *testing.T) *browser.StaticSession {
	t.Helper()
	s := browser.NewCannedSession()
	listing := `
		<html><body><main id="listing">
			<article class="productCard"><a class="productLink" href="/produto/g203">
				<span class="nameCard">Mouse Gamer Logitech G203</span>
				<img class="imageCard" src="/img/g203.jpg">
			</a></article>
		</main></body></html>`
	detail := `
		<html><body>
			<h1 id="titleProduct">Mouse Gamer Logitech G203</h1>
			<h4 class="finalPrice">R$ 99,90</h4>
			<div id="description">Mouse leve para jogos.</div>
			<div id="characteristics">
				<p>- Modelo: G203</p><p>- Marca: Logitech</p>
				<p>- DPI: 8000</p><p>- Cor: Preto</p>
			</div>
		</body></html>`
	require.NoError(t, s.AddPage(category.Mouse.ListingURL(), listing))
	require.NoError(t, s.AddPage("https://www.kabum.com.br/produto/g203", detail))
	return s
}

func testConfig() *config.Config {
	return &config.Config{
		Categories:    []string{"mouse"},
		StoreName:     "kabum",
		PageSize:      100,
		PageLimit:     1,
		ItemLimit:     10,
		BlockTime:     30 * time.Minute,
		CrawlInterval: time.Hour,
	}
}

func newTestWorker(t *testing.T, cfg *config.Config, pub publisher.Publisher, resultSink ResultSink, c *mapCache) (*Worker, *store.Store) {
	t.Helper()
	history, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { history.Close() })

	sessions := func() (browser.Session, error) {
		return mouseListingSession(t), nil
	}
	return NewWorker(context.Background(), cfg, sessions, history, c, pub, resultSink), history
}

func TestRunOnceScrapesUpsertsPublishesAndSends(t *testing.T) {
	pub := NewMockPublisher()
	resultSink := &MockSink{}
	c := &mapCache{values: make(map[string][]byte)}

	w, history := newTestWorker(t, testConfig(), pub, resultSink, c)
	w.runOnce()

	// published one batch under the category key
	require.Len(t, pub.messages["mouse"], 1)
	assert.Contains(t, string(pub.messages["mouse"][0]), "Mouse Gamer Logitech G203")
	assert.True(t, pub.trimmed)

	// delivered to the ingestion sink
	require.Len(t, resultSink.batches, 1)
	require.Len(t, resultSink.batches[0], 1)
	assert.Equal(t, "99.90", resultSink.batches[0][0].Value)

	// recorded in the price history
	res, err := history.Upsert(resultSink.batches[0][0])
	require.NoError(t, err)
	assert.False(t, res.Created)

	// category entered its cooldown window
	_, ok := c.values["tracksave_block_mouse"]
	assert.True(t, ok)
}

func TestRunOnceSkipsBlockedCategory(t *testing.T) {
	pub := NewMockPublisher()
	resultSink := &MockSink{}
	c := &mapCache{values: map[string][]byte{"tracksave_block_mouse": []byte("1")}}

	w, _ := newTestWorker(t, testConfig(), pub, resultSink, c)
	w.runOnce()

	assert.Empty(t, pub.messages)
	assert.Empty(t, resultSink.batches)
}

func TestRunOnceIgnoresUnknownCategory(t *testing.T) {
	cfg := testConfig()
	cfg.Categories = []string{"geladeira", "mouse"}

	pub := NewMockPublisher()
	resultSink := &MockSink{}
	c := &mapCache{values: make(map[string][]byte)}

	w, _ := newTestWorker(t, cfg, pub, resultSink, c)
	w.runOnce()

	// the unknown name is skipped, the valid one still runs
	require.Len(t, resultSink.batches, 1)
}

func TestRunOnceSurvivesSessionFailure(t *testing.T) {
	cfg := testConfig()
	history, err := store.Open(":memory:")
	require.NoError(t, err)
	defer history.Close()

	w := NewWorker(context.Background(), cfg,
		func() (browser.Session, error) { return nil, assert.AnError },
		history, nil, nil, &MockSink{})

	assert.NotPanics(t, func() { w.runOnce() })
}
