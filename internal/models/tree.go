package models

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// ItemTree renders an item as an indented tree, key attributes first.
// Lists and maps become branches; scalars and sets are leaves.
func ItemTree(it Item, schema KeySchemaType) string {
	tree := treeprint.NewWithRoot(KeyString(it, schema))
	for _, k := range ListAttributeKeys([]Item{it}, schema) {
		addAttribute(tree, k, it.Attributes[k])
	}
	return tree.String()
}

func addAttribute(branch treeprint.Tree, name string, a Attribute) {
	switch a.Kind {
	case KindL:
		sub := branch.AddMetaBranch(a.TypeString(), name)
		for i, v := range a.L {
			addAttribute(sub, fmt.Sprintf("[%d]", i), v)
		}
	case KindM:
		sub := branch.AddMetaBranch(a.TypeString(), name)
		for _, k := range sortedKeys(a.M) {
			addAttribute(sub, k, a.M[k])
		}
	default:
		branch.AddMetaNode(a.TypeString(), name+": "+a.SimpleString())
	}
}
