package cache

// ScopedKeyer prefixes every key, so several walls (one per couple, or one
// per deployment) can share a Redis database without colliding.
//
//	keyer := cache.NewScopedKeyer(nil, "wall:ana-y-leo:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner (DefaultKeyer when nil) with prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// WallKey implements Keyer.
func (k *ScopedKeyer) WallKey(ids []string, opts WallKeyOpts) string {
	return k.prefix + k.inner.WallKey(ids, opts)
}
