// Package constants holds configuration enum values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers for the alert push relay
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Realtime fan-out providers
const (
	RealtimeProviderLocal = "local"
	RealtimeProviderRedis = "redis"
)
