// Package connectivity reports whether the upstream network is reachable.
// Store operations consult it before spending a Sheets API call on a
// request that cannot leave the device.
package connectivity

import (
	"context"
	"net/http"
	"sync"
	"time"

	"ngopi/config"
	"ngopi/internal/domain/service"
)

type httpProbe struct {
	client   *http.Client
	url      string
	cacheFor time.Duration

	mu         sync.Mutex
	lastProbe  time.Time
	lastOnline bool
	now        func() time.Time
}

// NewHTTPProbe creates a probe that issues a lightweight GET against the
// configured endpoint. Results are cached for cfg.CacheFor so back-to-back
// store calls share one probe instead of racing the network.
func NewHTTPProbe(cfg *config.ConnectivityConfig) service.ConnectivityProbe {
	return &httpProbe{
		client:   &http.Client{Timeout: cfg.ProbeTimeout},
		url:      cfg.ProbeURL,
		cacheFor: cfg.CacheFor,
		now:      time.Now,
	}
}

// Online reports whether the probe endpoint answered recently. Any HTTP
// response counts as online; only transport failures mean offline.
func (p *httpProbe) Online(ctx context.Context) bool {
	p.mu.Lock()
	if !p.lastProbe.IsZero() && p.now().Sub(p.lastProbe) < p.cacheFor {
		online := p.lastOnline
		p.mu.Unlock()

		return online
	}
	p.mu.Unlock()

	online := p.probe(ctx)

	p.mu.Lock()
	p.lastProbe = p.now()
	p.lastOnline = online
	p.mu.Unlock()

	return online
}

func (p *httpProbe) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return true
}

type staticProbe bool

// NewStaticProbe returns a probe with a fixed answer. Used by tests and by
// deployments that run without a reachability endpoint.
func NewStaticProbe(online bool) service.ConnectivityProbe {
	return staticProbe(online)
}

func (p staticProbe) Online(context.Context) bool {
	return bool(p)
}
