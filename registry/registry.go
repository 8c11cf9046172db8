package registry

import "fmt"

// Register returns the identity of obj, allocating one if obj is new.
// It is idempotent: for a known object the existing identity is returned and
// kind, name and attrs are ignored. New objects get {type: kind, name: name}
// merged with attrs (reserved keys in attrs are dropped).
func (r *Registry[K]) Register(obj K, kind, name string, attrs map[string]string) uint64 {
	if id, ok := r.byObj[obj]; ok {
		return id
	}
	id := r.next
	r.next++

	r.byID[id] = obj
	r.byObj[obj] = id

	m := make(map[string]string, len(attrs)+2)
	mergeInto(m, attrs)
	m[KeyType] = kind
	m[KeyName] = name
	r.attrs[id] = m

	return id
}

// ID returns the identity of obj or ErrNotFound.
func (r *Registry[K]) ID(obj K) (uint64, error) {
	id, ok := r.byObj[obj]
	if !ok {
		return 0, ErrNotFound
	}

	return id, nil
}

// Contains reports whether obj is registered.
func (r *Registry[K]) Contains(obj K) bool {
	_, ok := r.byObj[obj]
	return ok
}

// Object resolves an identity back to its object.
func (r *Registry[K]) Object(id uint64) (K, bool) {
	obj, ok := r.byID[id]
	return obj, ok
}

// Attrs returns a copy of the attributes of id, or false if id is unknown.
func (r *Registry[K]) Attrs(id uint64) (map[string]string, bool) {
	m, ok := r.attrs[id]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out, true
}

// Attr returns a single attribute value of id.
func (r *Registry[K]) Attr(id uint64, key string) (string, error) {
	m, ok := r.attrs[id]
	if !ok {
		return "", fmt.Errorf("identity %d: %w", id, ErrNotFound)
	}
	v, ok := m[key]
	if !ok {
		return "", fmt.Errorf("identity %d attribute %q: %w", id, key, ErrNotFound)
	}

	return v, nil
}

// MergeAttrs overwrites or adds the non-reserved keys of attrs on obj.
func (r *Registry[K]) MergeAttrs(obj K, attrs map[string]string) error {
	id, ok := r.byObj[obj]
	if !ok {
		return ErrNotFound
	}
	mergeInto(r.attrs[id], attrs)

	return nil
}

// SetAttrs replaces every non-reserved attribute of obj with attrs.
func (r *Registry[K]) SetAttrs(obj K, attrs map[string]string) error {
	id, ok := r.byObj[obj]
	if !ok {
		return ErrNotFound
	}
	r.replace(id, attrs)

	return nil
}

// SetAttrsByID is SetAttrs addressed by identity.
func (r *Registry[K]) SetAttrsByID(id uint64, attrs map[string]string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	r.replace(id, attrs)

	return nil
}

// Remove drops obj, its identity mapping and its attributes.
// The identity is never handed out again.
func (r *Registry[K]) Remove(obj K) error {
	id, ok := r.byObj[obj]
	if !ok {
		return ErrNotFound
	}
	delete(r.byObj, obj)
	delete(r.byID, id)
	delete(r.attrs, id)

	return nil
}

// Len returns the number of live objects.
func (r *Registry[K]) Len() int { return len(r.byObj) }

// Next returns the identity the next Register call would allocate.
func (r *Registry[K]) Next() uint64 { return r.next }

// Clone returns a deep copy, counter included.
func (r *Registry[K]) Clone() *Registry[K] {
	c := &Registry[K]{
		next:  r.next,
		byID:  make(map[uint64]K, len(r.byID)),
		byObj: make(map[K]uint64, len(r.byObj)),
		attrs: make(map[uint64]map[string]string, len(r.attrs)),
	}
	for id, obj := range r.byID {
		c.byID[id] = obj
		c.byObj[obj] = id
	}
	for id := range r.attrs {
		c.attrs[id], _ = r.Attrs(id)
	}

	return c
}

func (r *Registry[K]) replace(id uint64, attrs map[string]string) {
	old := r.attrs[id]
	m := make(map[string]string, len(attrs)+2)
	mergeInto(m, attrs)
	m[KeyType] = old[KeyType]
	m[KeyName] = old[KeyName]
	r.attrs[id] = m
}

// mergeInto copies src into dst, skipping reserved keys.
func mergeInto(dst, src map[string]string) {
	for k, v := range src {
		if IsReserved(k) {
			continue
		}
		dst[k] = v
	}
}
