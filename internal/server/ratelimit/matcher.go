package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves the endpoint config for a path and method. Exact
// path matches win; configs whose path ends in "/" act as prefixes. Health
// checks are never limited regardless of configuration. Returns nil when
// nothing matches, leaving the request on the default limit.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
