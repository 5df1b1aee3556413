package rpcclient

import (
	"fmt"
	"net/url"

	"github.com/btcsuite/btcd/rpcclient"

	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/model"
)

// NewConnConfig builds an HTTP POST connection config from an endpoint URL.
// Credentials embedded in the URL are used unless user is set explicitly.
func NewConnConfig(rawURL, user, password string) (*rpcclient.ConnConfig, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("%w: rpc url is required", model.ErrConfiguration)
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse rpc url: %w", model.ErrConfiguration, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: rpc url scheme %q not supported, use http or https", model.ErrConfiguration, parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("%w: rpc url missing host", model.ErrConfiguration)
	}

	if user == "" && parsed.User != nil {
		user = parsed.User.Username()
		password, _ = parsed.User.Password()
	}

	return &rpcclient.ConnConfig{
		Host:         parsed.Host + parsed.EscapedPath(),
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   parsed.Scheme == "http",
	}, nil
}

// Dial connects a btcd rpcclient to rawURL.
func Dial(rawURL, user, password string) (*rpcclient.Client, error) {
	cfg, err := NewConnConfig(rawURL, user, password)
	if err != nil {
		return nil, err
	}
	client, err := rpcclient.New(cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: init rpc client: %w", model.ErrRPC, err)
	}
	return client, nil
}
