// Package config loads typed configuration from the process environment.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Each configuration type is
// parsed once and cached by its type name, so packages can call Load for the
// same struct from several places without re-parsing:
//
//	type Config struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Values that must be read fresh on every use (for example signing
// credentials an operator may rotate) should be parsed with env.ParseAs
// directly instead of going through the cache.
//
// Tests can clear the cache with ResetCache or re-parse one type with
// ForceReload.
package config
