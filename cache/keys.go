// cache/keys.go
package cache

import (
	"errors"
	"fmt"
	"strings"
)

// KeySeparator is the delimiter between cache key segments. Identifiers may
// not contain it, otherwise two logical objects could collide on one key.
const KeySeparator = ":"

// ErrInvalidIdentifier is returned when an identifier cannot be embedded in a
// cache key without breaking the scheme.
var ErrInvalidIdentifier = errors.New("invalid cache identifier")

// EntityKey derives the cache key for a single entity: "kind:id".
// The same logical object always maps to the same key.
func EntityKey(kind, id string) (string, error) {
	if err := validateSegment(kind); err != nil {
		return "", err
	}
	if err := validateSegment(id); err != nil {
		return "", err
	}
	return kind + KeySeparator + id, nil
}

// CollectionKey derives the cache key for the full collection of a kind:
// "kind:all".
func CollectionKey(kind string) string {
	return kind + KeySeparator + "all"
}

// PageKey derives the cache key for one paginated view of a kind:
// "kind:list:limit:offset".
func PageKey(kind string, limit, offset int) string {
	return fmt.Sprintf("%s%slist%s%d%s%d", kind, KeySeparator, KeySeparator, limit, KeySeparator, offset)
}

// PagePattern matches every paginated view of a kind, for coarse
// invalidation sweeps.
func PagePattern(kind string) string {
	return kind + KeySeparator + "list" + KeySeparator + "*"
}

func validateSegment(segment string) error {
	if segment == "" {
		return fmt.Errorf("%w: empty segment", ErrInvalidIdentifier)
	}
	if strings.Contains(segment, KeySeparator) {
		return fmt.Errorf("%w: segment %q contains reserved delimiter %q", ErrInvalidIdentifier, segment, KeySeparator)
	}
	return nil
}
