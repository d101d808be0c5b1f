// Package rpcproxy forwards JSON-RPC requests to the configured Solana node
// so the node URL and its embedded API key never reach the browser.
package rpcproxy

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"go.uber.org/zap"

	"github.com/musicvalue/vault-backend/internal/logger"
)

// Proxy is a single-upstream reverse proxy for Solana JSON-RPC.
type Proxy struct {
	upstream *url.URL
	inner    *httputil.ReverseProxy
}

// New creates a proxy to the given RPC endpoint URL.
func New(rpcURL string) (*Proxy, error) {
	upstream, err := url.Parse(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("invalid rpc url: %w", err)
	}

	inner := &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(upstream)
			r.Out.URL.Path = upstream.Path
			r.Out.URL.RawQuery = upstream.RawQuery
			r.Out.Host = upstream.Host
			// The client's cookies and auth have no business upstream
			r.Out.Header.Del("Cookie")
			r.Out.Header.Del("Authorization")
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error(err, zap.String("component", "rpc_proxy"))
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","error":{"code":-32000,"message":"upstream unavailable"},"id":null}`))
		},
	}

	return &Proxy{upstream: upstream, inner: inner}, nil
}

// ServeHTTP forwards the request to the upstream node.
func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.inner.ServeHTTP(w, r)
}
