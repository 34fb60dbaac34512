package proxy

import (
	"errors"
	"net/http"
	"net/url"
	"sync/atomic"
)

// Func decides the proxy for an outgoing request. A nil Func means direct
// connections, which is the fetch.Client default.
type Func func(*http.Request) (*url.URL, error)

type roundRobinSwitcher struct {
	proxyURLs []*url.URL
	index     uint32
}

func (r *roundRobinSwitcher) GetProxy(pr *http.Request) (*url.URL, error) {
	index := atomic.AddUint32(&r.index, 1) - 1
	u := r.proxyURLs[index%uint32(len(r.proxyURLs))]
	return u, nil
}

// RoundRobinSwitcher rotates through the given proxy URLs one request at a
// time. Unparseable entries are dropped.
func RoundRobinSwitcher(proxyURLs ...string) (Func, error) {
	var urls []*url.URL
	for _, u := range proxyURLs {
		parsed, err := url.Parse(u)
		if err != nil {
			continue
		}
		urls = append(urls, parsed)
	}
	if len(urls) < 1 {
		return nil, errors.New("proxy url list is empty")
	}
	return (&roundRobinSwitcher{urls, 0}).GetProxy, nil
}
