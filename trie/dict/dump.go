package dict

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the container as an indented tree, one branch per level
// element, with leaves shown as "element: value". Useful when debugging
// key layouts.
func (m *Map[K, V]) Dump() string {
	tree := treeprint.NewWithRoot(m.String())
	m.dump(tree)
	return tree.String()
}

func (m *Map[K, V]) dump(tree treeprint.Tree) {
	for i := 0; i < len(m.elems); i++ {
		var (
			elem = m.elems[i]
			sl   = m.slots[elem]
		)
		if sl.child != nil {
			sl.child.dump(tree.AddBranch(fmt.Sprintf("%v", elem)))
			continue
		}
		tree.AddNode(fmt.Sprintf("%v: %v", elem, sl.val))
	}
}
