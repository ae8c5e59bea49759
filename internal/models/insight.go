package models

import "sort"

// TypeCount is the number of items holding an attribute of a given type.
type TypeCount struct {
	Type  AttributeType
	Count int
}

// AttributeDistribution is the type breakdown of one attribute across items.
type AttributeDistribution struct {
	AttributeName string
	// Distributions is sorted by count, descending
	Distributions []TypeCount
}

// TableInsight summarizes attribute types over the scanned items of a table.
type TableInsight struct {
	TableName              string
	TotalItems             int
	AttributeDistributions []AttributeDistribution
}

// NewTableInsight counts attribute types per attribute name.
func NewTableInsight(desc TableDescription, items []Item) TableInsight {
	keys := ListAttributeKeys(items, desc.KeySchemaType)
	dists := make([]AttributeDistribution, len(keys))
	for i, key := range keys {
		counter := make(map[AttributeType]int)
		for _, it := range items {
			counter[TypeOf(it.Get(key))]++
		}
		counts := make([]TypeCount, 0, len(counter))
		for t, c := range counter {
			counts = append(counts, TypeCount{Type: t, Count: c})
		}
		sort.Slice(counts, func(a, b int) bool {
			if counts[a].Count != counts[b].Count {
				return counts[a].Count > counts[b].Count
			}
			return counts[a].Type < counts[b].Type
		})
		dists[i] = AttributeDistribution{AttributeName: key, Distributions: counts}
	}
	return TableInsight{
		TableName:              desc.TableName,
		TotalItems:             len(items),
		AttributeDistributions: dists,
	}
}
