package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSite(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><h1>hello</h1></body></html>"))
	})
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: *\nDisallow:"))
	})
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTML(t *testing.T) {
	srv := newSite(t)
	c := New()

	body, ok := c.HTML(srv.URL)
	require.True(t, ok)
	assert.Contains(t, body, "<h1>hello</h1>")
}

func TestHTMLAbsentOnHTTPFailure(t *testing.T) {
	srv := newSite(t)
	c := New()

	body, ok := c.HTML(srv.URL + "/missing")
	assert.False(t, ok)
	assert.Empty(t, body)
}

func TestHTMLAbsentOnUnreachable(t *testing.T) {
	srv := newSite(t)
	url := srv.URL
	srv.Close()

	c := New(WithTimeout(500 * time.Millisecond))
	_, ok := c.HTML(url)
	assert.False(t, ok)
	assert.False(t, c.IsLive(url))
}

func TestStatusCodeReportsNon200(t *testing.T) {
	srv := newSite(t)
	c := New()

	code, ok := c.StatusCode(srv.URL + "/missing")
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, c.IsLive(srv.URL+"/missing"))
	assert.True(t, c.IsLive(srv.URL))
}

func TestRobots(t *testing.T) {
	srv := newSite(t)
	c := New()

	robots := c.Robots(srv.URL + "/")
	assert.Contains(t, robots, "User-agent")

	assert.Equal(t, NoSitemap, c.Sitemap(srv.URL))
}

func TestUserAgentAndHeaders(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept-Language")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := New(
		WithUserAgent("scrapekit-test"),
		WithHeaders(map[string]string{"Accept-Language": "en"}),
	)
	_, ok := c.HTML(srv.URL)
	require.True(t, ok)
	assert.Equal(t, "scrapekit-test", gotUA)
	assert.Equal(t, "en", gotAccept)
}

func TestDelayBlocks(t *testing.T) {
	start := time.Now()
	Delay(0.05)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}
