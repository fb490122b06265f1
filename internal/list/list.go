// Package list provides the doubly-linked list used to track recency order
// in the cache. Nodes are exposed directly so that the cache can hold raw
// pointers to them in its lookup table: moving a node to the front never
// reallocates it, so a pointer into the list stays valid for the node's
// entire lifetime.
package list

// List is a doubly-linked list with a front (most-recently-used end, when
// used by the cache) and a back (least-recently-used end).
type List[V any] struct {
	Front, Back *Node[V]
	len         int
}

// Node is a node in the linked list. Prev and Next are nil at the
// respective ends of the list.
type Node[V any] struct {
	Value      V
	Prev, Next *Node[V]
}

// New returns an empty linked list.
func New[V any]() *List[V] {
	return &List[V]{}
}

// Len returns the number of nodes currently linked into the list.
func (l *List[V]) Len() int {
	return l.len
}

// PushFront adds 'v' in a fresh node at the front of the list and returns
// the node.
func (l *List[V]) PushFront(v V) *Node[V] {
	n := &Node[V]{Value: v}
	l.PushFrontNode(n)
	return n
}

// PushFrontNode splices the already-allocated node 'n' onto the front of
// the list. It is the caller's responsibility to ensure 'n' is not already
// linked into this or any other list.
func (l *List[V]) PushFrontNode(n *Node[V]) {
	n.Prev = nil
	n.Next = l.Front
	if l.Front != nil {
		l.Front.Prev = n
	} else {
		l.Back = n
	}
	l.Front = n
	l.len++
}

// Remove unlinks the node 'n' from the list. 'n' must currently belong to
// this list. The node's own Prev/Next fields are left untouched so that a
// caller mid-traversal can still use them, but the node is no longer
// reachable from Front/Back.
func (l *List[V]) Remove(n *Node[V]) {
	if n.Prev != nil {
		n.Prev.Next = n.Next
	} else {
		l.Front = n.Next
	}
	if n.Next != nil {
		n.Next.Prev = n.Prev
	} else {
		l.Back = n.Prev
	}
	l.len--
}

// MoveToFront unlinks 'n' and re-splices it at the front in one step. This
// is the operation behind every recency promotion (Get, Touch, Mutate).
func (l *List[V]) MoveToFront(n *Node[V]) {
	if l.Front == n {
		return
	}
	l.Remove(n)
	n.Prev = nil
	n.Next = l.Front
	if l.Front != nil {
		l.Front.Prev = n
	} else {
		l.Back = n
	}
	l.Front = n
	l.len++
}

// Init empties the list without visiting its nodes. The caller is
// responsible for dropping any node references it still holds elsewhere
// (e.g. in a lookup table).
func (l *List[V]) Init() {
	l.Front = nil
	l.Back = nil
	l.len = 0
}

// Each calls 'fn' on every element from this node to the back of the list.
func (n *Node[V]) Each(fn func(val V)) {
	for node := n; node != nil; node = node.Next {
		fn(node.Value)
	}
}

// EachReverse calls 'fn' on every element from this node to the front of
// the list.
func (n *Node[V]) EachReverse(fn func(val V)) {
	for node := n; node != nil; node = node.Prev {
		fn(node.Value)
	}
}
