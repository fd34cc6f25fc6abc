package browser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSessionNavigateAndRead(t *testing.T) {
	s := NewCannedSession()
	require.NoError(t, s.AddPage("https://example.com/list", `
		<html><body>
			<article class="card"><a href="/item/1"><span class="name">Item One</span></a></article>
			<article class="card"><a href="/item/2"><span class="name">Item Two</span></a></article>
		</body></html>`))

	ctx := context.Background()
	require.NoError(t, s.Navigate(ctx, "https://example.com/list"))

	n, err := s.Count(ctx, "article.card")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	name, err := s.TextAt(ctx, "span.name", 1)
	require.NoError(t, err)
	assert.Equal(t, "Item Two", name)

	href, err := s.AttrAt(ctx, "article.card a", "href", 0)
	require.NoError(t, err)
	assert.Equal(t, "/item/1", href)
}

func TestStaticSessionClickFollowsHrefAndGoBack(t *testing.T) {
	s := NewCannedSession()
	require.NoError(t, s.AddPage("https://example.com/list", `
		<html><body><article class="card"><a href="/item/1">go</a></article></body></html>`))
	require.NoError(t, s.AddPage("https://example.com/item/1", `
		<html><body><h1 id="title">Detail</h1></body></html>`))

	ctx := context.Background()
	require.NoError(t, s.Navigate(ctx, "https://example.com/list"))
	require.NoError(t, s.ClickAt(ctx, "article.card", 0))

	title, err := s.Text(ctx, "#title")
	require.NoError(t, err)
	assert.Equal(t, "Detail", title)

	require.NoError(t, s.GoBack(ctx))
	n, err := s.Count(ctx, "article.card")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStaticSessionWaitForDoesNotPoll(t *testing.T) {
	s := NewCannedSession()
	require.NoError(t, s.AddPage("https://example.com/p", `<html><body><div id="x"></div></body></html>`))
	require.NoError(t, s.Navigate(context.Background(), "https://example.com/p"))

	start := time.Now()
	assert.True(t, s.WaitFor(context.Background(), "#x", 5*time.Second))
	assert.False(t, s.WaitFor(context.Background(), "#missing", 5*time.Second))
	assert.Less(t, time.Since(start), time.Second)
}

func TestStaticSessionUnregisteredURL(t *testing.T) {
	s := NewCannedSession()
	err := s.Navigate(context.Background(), "https://example.com/nowhere")
	assert.Error(t, err)
}
