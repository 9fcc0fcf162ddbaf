// Package constants collects string values shared between config and infrastructure.
package constants

const (
	// EnvDevelop is the env.env value used on developer machines.
	EnvDevelop = "develop"
)

// Event publisher providers accepted by pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Event types carried by service.OrderEvent.
const (
	EventOrderExtracted        = "order.extracted"
	EventCombinationsGenerated = "combinations.generated"
)
