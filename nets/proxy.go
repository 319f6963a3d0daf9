package nets

import (
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/pane/configs"
	"github.com/reusee/pane/logs"
	"github.com/reusee/pane/modes"
	"golang.org/x/net/proxy"
)

// ProxyAddr is the proxy for non-local traffic, from config or the
// usual environment variables. Empty means direct.
type ProxyAddr string

func (p ProxyAddr) ConfigExpr() string {
	return "ProxyAddr"
}

var _ configs.Configurable = ProxyAddr("")

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) (ret ProxyAddr) {
	defer func() {
		logger.Info("proxy", "addr", ret)
	}()

	if mode == modes.ModeDevelopment {
		return ""
	}

	for _, path := range []string{
		"proxy_addr",
		"proxy_address",
		"http_proxy",
		"socks_proxy",
	} {
		if addr := configs.First[ProxyAddr](loader, path); addr != "" {
			return addr
		}
	}
	for _, name := range []string{
		"ALL_PROXY", "all_proxy",
		"HTTP_PROXY", "http_proxy",
		"SOCKS_PROXY", "socks_proxy",
	} {
		if addr := os.Getenv(name); addr != "" {
			return ProxyAddr(addr)
		}
	}
	return ""
}

type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	proxyAddr ProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if proxyAddr == "" {
			return nil, nil
		}
		u, err := url.Parse(string(proxyAddr))
		if err != nil {
			return nil, err
		}
		// proxy.FromURL knows socks5, not the bare socks alias
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		return u, nil
	})
}

type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	getURL GetProxyURL,
) GetProxyDialer {
	direct := any(&net.Dialer{}).(Dialer)
	return sync.OnceValues(func() (Dialer, error) {
		u, err := getURL()
		if err != nil {
			return nil, err
		}
		if u == nil {
			return direct, nil
		}
		dialer, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		return dialer.(Dialer), nil
	})
}
