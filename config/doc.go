// Package config provides key/value sources and typed leaf declarations
// for populating a container's configuration before resolution.
//
// A Source is anything that can look up a raw string by key: the process
// environment (optionally pre-loaded from .env files), or a literal map for
// tests. A Leaf declares how one named configuration value is obtained from
// a source — which key to read, whether it is required, its default, and
// how the raw string converts to a typed value.
//
//	err := c.Configure(config.Env(),
//	    config.String("api_key", "API_KEY", config.Required()),
//	    config.Int("timeout", "TIMEOUT", config.Default(5)),
//	)
//
// Failures are reported at configuration time with the offending key —
// a missing required key is a MissingKeyError, a non-integer TIMEOUT is a
// ParseError — so nothing malformed ever reaches a constructor.
package config
