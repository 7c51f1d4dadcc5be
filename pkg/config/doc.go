// Package config loads typed configuration from environment variables.
//
// Struct fields are bound with github.com/caarlos0/env tags. The first call to
// Load reads a .env file from the working directory if one exists, then every
// configuration type is parsed once and cached for the life of the process:
//
//	type Config struct {
//	    CountryCode string `env:"MSISDN_COUNTRY_CODE,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// LoadEnv reads additional dotenv files, later files overriding earlier ones.
// ResetCache forgets cached values, which is mostly useful in tests.
package config
