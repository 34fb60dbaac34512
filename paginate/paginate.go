// Package paginate walks paged listings: batch fetching and next-page link
// resolution on top of a fetch.Fetcher. Requests are issued strictly one at
// a time, in input order.
package paginate

import (
	"github.com/wenzapen/scrapekit/extract"
	"github.com/wenzapen/scrapekit/fetch"
	"go.uber.org/zap"
)

type Pager struct {
	options
}

func New(opts ...Option) *Pager {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.Fetcher == nil {
		options.Fetcher = fetch.New()
	}
	return &Pager{
		options: options,
	}
}

// FetchMany fetches each URL sequentially. URLs that fail are logged and
// left out of the result map.
func (p *Pager) FetchMany(urls []string) map[string]string {
	pages := make(map[string]string, len(urls))
	for i, u := range urls {
		if i > 0 && p.WaitTime > 0 {
			fetch.Delay(p.WaitTime)
		}
		body, err := p.Fetcher.Get(u)
		if err != nil {
			p.logger.Error("fetch page failed",
				zap.String("url", u),
				zap.Error(err))
			continue
		}
		pages[u] = string(body)
	}
	return pages
}

// NextPage returns the href of the first element matching selector, or
// absent.
func (p *Pager) NextPage(html, selector string) (string, bool) {
	for _, n := range extract.Select(html, selector) {
		if href, ok := n.Attr("href"); ok {
			return href, true
		}
	}
	return "", false
}

// Follow walks next-page links from startURL, fetching up to maxPages pages,
// and returns the URLs visited in order. The walk stops at the first fetch
// failure or missing next link.
func (p *Pager) Follow(startURL, selector string, maxPages int) []string {
	visited := []string{}
	url := startURL
	for page := 0; page < maxPages; page++ {
		if page > 0 && p.WaitTime > 0 {
			fetch.Delay(p.WaitTime)
		}
		body, err := p.Fetcher.Get(url)
		if err != nil {
			p.logger.Error("fetch page failed",
				zap.String("url", url),
				zap.Error(err))
			break
		}
		visited = append(visited, url)
		next, ok := p.NextPage(string(body), selector)
		if !ok {
			break
		}
		url = next
	}
	return visited
}
