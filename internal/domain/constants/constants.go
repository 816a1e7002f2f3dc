// Package constants holds names shared between configuration and infrastructure.
package constants

// Reminder publisher names accepted in the pubsub.provider setting.
const (
	PubSubProviderWebhook = "webhook"
)

// Link opener names accepted in the share.opener setting.
const (
	OpenerLog    = "log"
	OpenerSystem = "system"
)

// Record store defaults.
const (
	DefaultStoreURL = "mem://"
	DefaultStoreKey = "warranty-manager/warranties.json"
)
