package redis

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/linkvault/linkvault/internal/search"
)

const (
	// KeyPrefixSearch is the prefix for cached search results.
	// Full shape: linkvault:search:<owner>:<request hash>
	KeyPrefixSearch = "linkvault:search:"
)

// SearchKey returns the cache key for one search request. Each
// variable-length field is length-prefixed before hashing so no two
// distinct requests can encode to the same byte string.
func SearchKey(q search.Query) string {
	payload := fmt.Sprintf("%d|%s%d|%s%d|%d",
		len(q.Term), q.Term, len(q.Category), q.Category, q.Page, q.Limit)
	sum := sha256.Sum256([]byte(payload))
	return KeyPrefixSearch + q.OwnerID + ":" + hex.EncodeToString(sum[:8])
}

// OwnerPattern matches every cached search result of one owner.
func OwnerPattern(ownerID string) string {
	return KeyPrefixSearch + ownerID + ":*"
}
