package repository

// StateRepository is the durable key/value store behind the persistence
// adapter. Get reports found=false for missing keys instead of an error.
type StateRepository interface {
	Get(key string) (value string, found bool, err error)
	Put(key, value string) error
	Delete(keys ...string) error
}
