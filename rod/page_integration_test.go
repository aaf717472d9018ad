//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/cardscrape"
	"github.com/fwojciec/cardscrape/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Page implements cardscrape.Page.
var _ cardscrape.Page = (*rod.Page)(nil)

func TestPage_NavigateAndReadRenderedHTML(t *testing.T) {
	t.Parallel()

	// Rows are inserted after load, as the catalog site does.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<body>
<h3>  Alpha Edition  </h3>
<script>
setTimeout(function () {
  var div = document.createElement('div');
  div.className = 'cards';
  div.innerHTML = '<ul><li><a href="/cards/bolt">Bolt</a><span>$1</span><span></span><i class="ss-alp"></i></li></ul>';
  document.body.appendChild(div);
}, 200);
</script>
</body>
</html>`))
	}))
	defer srv.Close()

	page, err := rod.NewPage(rod.WithReadyTimeout(5 * time.Second))
	require.NoError(t, err)
	defer page.Close()

	ctx := context.Background()
	require.NoError(t, page.Navigate(ctx, srv.URL+"/sets/alpha"))
	require.NoError(t, page.WaitVisible(ctx, ".cards"))

	html, err := page.HTML(ctx)
	require.NoError(t, err)
	assert.Contains(t, html, "ss-alp")
}

func TestPage_WaitVisible_TimesOutWithParseError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h3>Empty</h3></body></html>`))
	}))
	defer srv.Close()

	page, err := rod.NewPage(rod.WithReadyTimeout(200 * time.Millisecond))
	require.NoError(t, err)
	defer page.Close()

	ctx := context.Background()
	require.NoError(t, page.Navigate(ctx, srv.URL))

	err = page.WaitVisible(ctx, ".cards")

	require.Error(t, err)
	assert.Equal(t, cardscrape.EPARSE, cardscrape.ErrorCode(err))
}

func TestPage_TimeoutsAreScopedToEachCall(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h3>Alpha</h3><div class="cards"><ul></ul></div></body></html>`))
	}))
	defer srv.Close()

	page, err := rod.NewPage(
		rod.WithNavigationTimeout(2*time.Second),
		rod.WithReadyTimeout(300*time.Millisecond),
	)
	require.NoError(t, err)
	defer page.Close()

	// The run as a whole outlasts both timeouts; each call gets its own.
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, page.Navigate(ctx, srv.URL))
		require.NoError(t, page.WaitVisible(ctx, ".cards"))
		time.Sleep(400 * time.Millisecond)
	}

	html, err := page.HTML(ctx)
	require.NoError(t, err)
	assert.Contains(t, html, "Alpha")
}

func TestPage_Navigate_UnreachableHost(t *testing.T) {
	t.Parallel()

	page, err := rod.NewPage()
	require.NoError(t, err)
	defer page.Close()

	err = page.Navigate(context.Background(), "http://127.0.0.1:1/")

	require.Error(t, err)
	assert.Equal(t, cardscrape.ENAVIGATE, cardscrape.ErrorCode(err))
}

func TestPage_Navigate_ContextCancellation(t *testing.T) {
	t.Parallel()

	page, err := rod.NewPage()
	require.NoError(t, err)
	defer page.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = page.Navigate(ctx, "http://example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPage_Close_Idempotent(t *testing.T) {
	t.Parallel()

	page, err := rod.NewPage()
	require.NoError(t, err)

	require.NoError(t, page.Close())
	require.NoError(t, page.Close())
}

func TestPage_AfterClose_ReturnsError(t *testing.T) {
	t.Parallel()

	page, err := rod.NewPage()
	require.NoError(t, err)
	require.NoError(t, page.Close())

	_, err = page.HTML(context.Background())

	require.Error(t, err)
	assert.Equal(t, cardscrape.EINVALID, cardscrape.ErrorCode(err))
	assert.Contains(t, cardscrape.ErrorMessage(err), "closed")
}
