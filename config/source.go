package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Source supplies raw configuration strings by key. An empty value is
// treated the same as an absent one.
type Source interface {
	Lookup(key string) (string, bool)
}

// MapSource is a literal in-memory source, mainly for tests and examples.
type MapSource map[string]string

// Lookup implements Source.
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

type envSource struct{}

// Env returns a Source backed by the process environment. Any given .env
// files are loaded first (defaulting to ./.env when none are named);
// a missing file is not an error — production environments typically set
// variables directly.
func Env(files ...string) Source {
	_ = godotenv.Load(files...)
	return envSource{}
}

// Lookup implements Source.
func (envSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}
