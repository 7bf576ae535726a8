// Package constants defines shared identifiers used across layers.
package constants

// Environment names matched against config.Env.Env.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider names selected by config.PubSub.Provider.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
	PubSubProviderNoop   = "noop"
)
