package zrender

// Tree manipulation. Only group nodes carry children; the child list is the
// paint order.

// AddChild appends child to this group. A child with a parent is reparented;
// when the group is live in a host the child attaches to it. Panics if the
// node is not a group, child is nil, the add would create a cycle, or child
// serves another node as label or clip path.
func (n *Node) AddChild(child *Node) {
	n.AddChildAt(child, len(n.children))
}

// AddChildAt inserts child at the given index among the group's children.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if !n.IsGroup() {
		panic("zrender: AddChild on a non-group node")
	}
	if child == nil {
		panic("zrender: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("zrender: adding child would create a cycle")
	}
	if child.hostTarget != nil {
		panic("zrender: node is attached as a label or clip path")
	}
	if index < 0 || index > len(n.children) {
		panic("zrender: child index out of range")
	}
	if child.parent != nil {
		if child.parent == n {
			n.removeChildByPtr(child)
			if index > len(n.children) {
				index = len(n.children)
			}
		} else {
			child.parent.removeChildByPtr(child)
			if child.host != nil {
				child.RemoveFromHost(child.host)
			}
		}
	}
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	if n.host != nil && child.host != n.host {
		child.AddToHost(n.host)
	}
	n.MarkDirty()
}

// RemoveChild detaches child from this group, deregistering it from the
// host when live. Panics if child is not parented here.
func (n *Node) RemoveChild(child *Node) {
	if child == nil || child.parent != n {
		panic("zrender: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.parent = nil
	if n.host != nil {
		child.RemoveFromHost(n.host)
	}
	n.MarkDirty()
}

// RemoveChildren detaches all children. The children are not disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.parent = nil
		if n.host != nil {
			child.RemoveFromHost(n.host)
		}
	}
	n.children = n.children[:0]
	n.MarkDirty()
}

// RemoveFromParent detaches this node from its parent. No-op when
// unparented.
func (n *Node) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	n.parent.RemoveChild(n)
}

// Children returns the child list in paint order. The returned slice MUST
// NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// ChildByName returns the first node named name in this subtree, searching
// depth-first, or nil.
func (n *Node) ChildByName(name string) *Node {
	for _, child := range n.children {
		if child.Name == name {
			return child
		}
		if found := child.ChildByName(name); found != nil {
			return found
		}
	}
	return nil
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
