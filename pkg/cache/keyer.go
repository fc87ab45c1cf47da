package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// WallKeyOpts lists every input that changes a computed wall.
type WallKeyOpts struct {
	Columns   int      `json:"columns"`
	Colors    []string `json:"colors"`
	Rotations []string `json:"rotations"`
}

// Keyer derives cache keys.
type Keyer interface {
	// WallKey returns the key of the wall built from ids, in order.
	WallKey(ids []string, opts WallKeyOpts) string
}

// DefaultKeyer produces "wall:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// WallKey implements Keyer.
func (DefaultKeyer) WallKey(ids []string, opts WallKeyOpts) string {
	return hashKey("wall", ids, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// Hash computes the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
