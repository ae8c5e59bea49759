package models

import (
	"fmt"
	"sort"
)

// Item is a single DynamoDB item.
type Item struct {
	Attributes map[string]Attribute
}

// Get returns the attribute stored under key, or nil.
func (it Item) Get(key string) *Attribute {
	a, ok := it.Attributes[key]
	if !ok {
		return nil
	}
	return &a
}

// mustGet returns a key attribute. Items returned by DynamoDB always carry
// their primary key, so a missing one panics.
func (it Item) mustGet(key string) Attribute {
	a, ok := it.Attributes[key]
	if !ok {
		panic(fmt.Sprintf("missing key attribute %q", key))
	}
	return a
}

// KeyAttributes returns the primary key attributes of the item.
func (it Item) KeyAttributes(schema KeySchemaType) map[string]Attribute {
	key := make(map[string]Attribute, 2)
	for _, k := range schema.Keys() {
		key[k] = it.mustGet(k)
	}
	return key
}

// KeyString renders the primary key as "hash" or "hash / range".
func KeyString(it Item, schema KeySchemaType) string {
	hash := it.mustGet(schema.Hash).SimpleString()
	if !schema.HasRange() {
		return hash
	}
	return hash + " / " + it.mustGet(schema.Range).SimpleString()
}

// ListAttributeKeys returns the union of attribute names across items:
// hash key first, range key second, then the rest in ascending order.
func ListAttributeKeys(items []Item, schema KeySchemaType) []string {
	seen := make(map[string]struct{})
	for _, it := range items {
		for k := range it.Attributes {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sortKeys(keys, schema)
	return keys
}

func sortKeys(keys []string, schema KeySchemaType) {
	rank := func(k string) int {
		switch {
		case k == schema.Hash:
			return 0
		case schema.HasRange() && k == schema.Range:
			return 1
		default:
			return 2
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
}

// SortItems sorts items by hash key, then range key.
func SortItems(items []Item, schema KeySchemaType) {
	sort.SliceStable(items, func(i, j int) bool {
		c := compareKey(items[i], items[j], schema.Hash)
		if c == 0 && schema.HasRange() {
			c = compareKey(items[i], items[j], schema.Range)
		}
		return c < 0
	})
}

func compareKey(a, b Item, key string) int {
	c, ok := a.mustGet(key).Compare(b.mustGet(key))
	if !ok {
		panic(fmt.Sprintf("key attribute %q is not comparable", key))
	}
	return c
}
