package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andreyques41/lyfter-store/cache"
)

func TestEntityKey(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		first, err := cache.EntityKey("product", "42")
		assert.NoError(t, err)
		second, err := cache.EntityKey("product", "42")
		assert.NoError(t, err)
		assert.Equal(t, "product:42", first)
		assert.Equal(t, first, second)
	})

	t.Run("DistinctIDsDistinctKeys", func(t *testing.T) {
		a, _ := cache.EntityKey("product", "1")
		b, _ := cache.EntityKey("product", "2")
		assert.NotEqual(t, a, b)
	})

	t.Run("EmptyID", func(t *testing.T) {
		_, err := cache.EntityKey("product", "")
		assert.ErrorIs(t, err, cache.ErrInvalidIdentifier)
	})

	t.Run("EmptyKind", func(t *testing.T) {
		_, err := cache.EntityKey("", "42")
		assert.ErrorIs(t, err, cache.ErrInvalidIdentifier)
	})

	t.Run("ReservedDelimiterInID", func(t *testing.T) {
		_, err := cache.EntityKey("product", "4:2")
		assert.ErrorIs(t, err, cache.ErrInvalidIdentifier)
	})
}

func TestCollectionKey(t *testing.T) {
	assert.Equal(t, "product:all", cache.CollectionKey("product"))
	assert.Equal(t, "order:all", cache.CollectionKey("order"))
}

func TestPageKeys(t *testing.T) {
	assert.Equal(t, "product:list:20:40", cache.PageKey("product", 20, 40))
	assert.Equal(t, "product:list:*", cache.PagePattern("product"))
}

func TestKindsAreSeparateNamespaces(t *testing.T) {
	productKey, _ := cache.EntityKey("product", "7")
	orderKey, _ := cache.EntityKey("order", "7")
	assert.NotEqual(t, productKey, orderKey)
}
