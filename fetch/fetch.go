package fetch

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sentinels returned in place of a missing robots.txt or sitemap.xml.
const (
	NoRobots  = "No robots.txt found."
	NoSitemap = "No sitemap found."
)

type Fetcher interface {
	Get(url string) ([]byte, error)
}

// Client issues synchronous GET requests. It is stateless apart from the
// option set fixed at construction and is safe for reuse across calls.
type Client struct {
	options
	cli *http.Client
}

func New(opts ...Option) *Client {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	cli := &http.Client{
		Timeout: options.Timeout,
	}
	if options.Proxy != nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.Proxy = options.Proxy
		cli.Transport = transport
	}
	return &Client{
		options: options,
		cli:     cli,
	}
}

// Get fetches url and returns the body normalized to UTF-8. A non-200
// response is an error.
func (c *Client) Get(url string) ([]byte, error) {
	resp, err := c.do(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error status code %v", resp.StatusCode)
	}

	bodyReader := bufio.NewReader(resp.Body)
	e := determineEncoding(bodyReader)
	utf8Reader := transform.NewReader(bodyReader, e.NewDecoder())

	return io.ReadAll(utf8Reader)
}

// HTML returns the page body for url, or absent. Failures are logged, never
// raised to the caller.
func (c *Client) HTML(url string) (string, bool) {
	body, err := c.Get(url)
	if err != nil {
		c.logger.Error("fetch html failed",
			zap.String("url", url),
			zap.Error(err))
		return "", false
	}
	return string(body), true
}

// StatusCode returns the response status for url, or absent on transport
// failure. Non-200 codes are reported as-is, not as failures.
func (c *Client) StatusCode(url string) (int, bool) {
	resp, err := c.do(url)
	if err != nil {
		c.logger.Error("fetch status failed",
			zap.String("url", url),
			zap.Error(err))
		return 0, false
	}
	defer resp.Body.Close()
	return resp.StatusCode, true
}

func (c *Client) IsLive(url string) bool {
	code, ok := c.StatusCode(url)
	return ok && code == http.StatusOK
}

// Robots fetches <site>/robots.txt, or the NoRobots sentinel when the site
// does not serve one.
func (c *Client) Robots(site string) string {
	body, err := c.Get(strings.TrimSuffix(site, "/") + "/robots.txt")
	if err != nil {
		c.logger.Info("no robots.txt",
			zap.String("site", site),
			zap.Error(err))
		return NoRobots
	}
	return string(body)
}

// Sitemap fetches <site>/sitemap.xml, or the NoSitemap sentinel.
func (c *Client) Sitemap(site string) string {
	body, err := c.Get(strings.TrimSuffix(site, "/") + "/sitemap.xml")
	if err != nil {
		c.logger.Info("no sitemap.xml",
			zap.String("site", site),
			zap.Error(err))
		return NoSitemap
	}
	return string(body)
}

func (c *Client) do(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request failed:%w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}
	return c.cli.Do(req)
}

// Delay blocks the calling goroutine for the given number of seconds.
// There is no cancellation.
func Delay(seconds float64) {
	time.Sleep(time.Duration(seconds * float64(time.Second)))
}

func determineEncoding(r *bufio.Reader) encoding.Encoding {
	peek, err := r.Peek(1024)
	if err != nil && len(peek) == 0 {
		return unicode.UTF8
	}
	e, _, _ := charset.DetermineEncoding(peek, "")
	return e
}
