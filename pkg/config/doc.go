// Package config loads process configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: optional
// .env files seed the environment, then env tags on a struct describe the
// variables, their defaults and which ones are required. Every package that
// needs settings (Redis, Mongo, the queue, the mail transports, JWT) declares
// its own struct and the binaries load them at startup:
//
//	var mongoCfg mongo.Config
//	config.MustLoad(&mongoCfg)
//
// A struct that implements Validator is validated right after parsing, so
// rules spanning several variables fail startup the same way a missing
// required variable does.
//
// Each configuration type is parsed once per process and cached by value.
// Tests that change the environment call Reset between cases.
//
// # Errors
//
//   - ErrParsingConfig: a variable is missing or has the wrong type.
//   - ErrInvalidConfig: Validate rejected the parsed struct.
//   - ErrLoadingEnvFile: a file passed to LoadEnv could not be read.
//   - ErrNilPointer: nil was passed to Load.
package config
