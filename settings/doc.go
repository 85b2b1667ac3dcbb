// Package settings loads application configuration from files and the
// environment and turns it into configured clients and pools.
//
// Configuration can live in a YAML, JSON or TOML file and every scalar
// key can be overridden with a DOCWEAVE_ prefixed environment variable,
// e.g. DOCWEAVE_RETRY_MAX_RETRIES=3.
package settings
