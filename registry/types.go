package registry

import "errors"

// ErrNotFound indicates the object or identity is not registered.
var ErrNotFound = errors.New("registry: object not found")

// Reserved attribute keys.
const (
	KeyType = "type"
	KeyName = "name"
)

// IsReserved reports whether key is auto-populated by the registry.
func IsReserved(key string) bool {
	return key == KeyType || key == KeyName
}

// Registry is a bidirectional object↔identity map with per-identity attributes.
type Registry[K comparable] struct {
	next  uint64                       // next identity to allocate
	byID  map[uint64]K                 // identity → object
	byObj map[K]uint64                 // object → identity
	attrs map[uint64]map[string]string // identity → attributes
}

// New returns an empty Registry whose first identity is 0.
func New[K comparable]() *Registry[K] {
	return &Registry[K]{
		byID:  make(map[uint64]K),
		byObj: make(map[K]uint64),
		attrs: make(map[uint64]map[string]string),
	}
}
