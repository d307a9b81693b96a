// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-matjip server. It aggregates all sub-configurations and is populated
// by merging values from command-line flags, environment variables, an
// optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token signing, password
	// hashing cost, tag allocation and pagination parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// blob stores used for profile icons.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and upload limits for the
	// HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify session
	// tokens. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// PasswordHashCost is the bcrypt work factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// TagAllocationRetries bounds how many times registration retries
	// after a tag collision before giving up.
	// Env: APP_TAG_ALLOCATION_RETRIES
	TagAllocationRetries uint64 `env:"TAG_ALLOCATION_RETRIES"`

	// ReviewPageSize is the number of reviews per page.
	// Env: APP_REVIEW_PAGE_SIZE
	ReviewPageSize uint64 `env:"REVIEW_PAGE_SIZE"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// The gRPC server is not started when empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize caps the size of an uploaded profile icon in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
	S3    S3    `envPrefix:"S3_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the database:
	// "postgres://..." opens PostgreSQL through pgx,
	// "sqlite://path" or "file:path" opens SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns limits the PostgreSQL connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Files configures the local file-system blob store.
type Files struct {
	// IconDir is the directory profile icons are written to.
	// Env: STORAGE_FILES_ICON_DIR
	IconDir string `env:"ICON_DIR"`

	// PublicURL is the URL prefix under which IconDir is served.
	// Env: STORAGE_FILES_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`
}

// S3 configures the S3-compatible blob store. It takes precedence over
// [Files] when Bucket is set.
type S3 struct {
	Bucket    string `env:"BUCKET"`
	Region    string `env:"REGION"`
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// PublicURL is the base URL objects are reachable at. When empty the
	// virtual-hosted AWS URL of the bucket is used.
	PublicURL string `env:"PUBLIC_URL"`
}

// UseS3 reports whether profile icons go to S3 rather than the local disk.
func (s Storage) UseS3() bool {
	return s.S3.Bucket != ""
}

// GetStructuredConfig loads, merges, and validates the server
// configuration from flags, environment variables, the optional JSON file
// and defaults.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
