package sessions

import "context"

// Storage is a durable string key/value store scoped to one client.
// Implementations must apply Set and Delete to all given keys as one unit
// and must be safe for concurrent use.
type Storage interface {
	// Get returns the values of the requested keys that exist.
	Get(ctx context.Context, keys ...string) (map[string]string, error)

	// Set writes every key in values, overwriting existing values
	Set(ctx context.Context, values map[string]string) error

	// Delete removes the keys; missing keys are not an error
	Delete(ctx context.Context, keys ...string) error
}
