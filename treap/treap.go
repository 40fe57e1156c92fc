package treap

// Option configures a Treap at construction via functional arguments.
type Option func(*options)

type options struct {
	seed    uint64
	seedSet bool
}

// WithSeed pins the per-instance priority stream to a deterministic
// splitmix64 sequence starting from seed. Two treaps built with the same
// seed and fed the same operations have identical internal shape.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
	}
}

// node is a single treap node. Children are exclusively owned: every
// node is referenced by at most one parent, and equal keys share a node
// through count rather than duplicating structure.
type node struct {
	key      int64
	priority uint64
	left     *node
	right    *node
	size     int // subtree element total, duplicates included
	count    int // multiplicity of key at this node
}

// recalc restores size = left.size + count + right.size.
func (n *node) recalc() {
	n.size = subtreeSize(n.left) + n.count + subtreeSize(n.right)
}

func subtreeSize(n *node) int {
	if n == nil {
		return 0
	}

	return n.size
}

func priorityOf(n *node) uint64 {
	if n == nil {
		return 0
	}

	return n.priority
}

// Treap is an ordered int64 multiset with randomized balancing.
// Not safe for concurrent use; callers serialize access externally.
type Treap struct {
	root *node
	rng  splitmix64
}

// New creates an empty Treap. Without WithSeed, the priority stream is
// seeded from a process-wide atomic counter, giving every instance its
// own independent sequence.
func New(opts ...Option) *Treap {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seedSet {
		o.seed = defaultSeed.Add(goldenGamma)
	}

	return &Treap{rng: splitmix64{state: o.seed}}
}

// Len returns the total number of stored elements, duplicates included.
func (t *Treap) Len() int {
	return subtreeSize(t.root)
}

// IsEmpty reports whether the multiset holds no elements.
func (t *Treap) IsEmpty() bool {
	return t.root == nil
}

// Contains reports whether at least one occurrence of key is stored.
// Pure BST descent; never mutates the tree.
func (t *Treap) Contains(key int64) bool {
	cur := t.root
	for cur != nil {
		switch {
		case key < cur.key:
			cur = cur.left
		case key > cur.key:
			cur = cur.right
		default:
			return true
		}
	}

	return false
}

// Insert adds one occurrence of key. An existing equal key only has its
// multiplicity incremented; a genuinely new key becomes a leaf with a
// fresh random priority, and rotations on the unwind restore the heap
// property while sizes are recomputed bottom-up.
func (t *Treap) Insert(key int64) {
	t.root = t.insert(t.root, key)
}

func (t *Treap) insert(n *node, key int64) *node {
	if n == nil {
		return &node{key: key, priority: t.rng.next(), size: 1, count: 1}
	}

	switch {
	case key == n.key:
		// Duplicate: bump multiplicity, no structural change.
		n.count++
		n.recalc()
	case key < n.key:
		n.left = t.insert(n.left, key)
		if priorityOf(n.left) > n.priority {
			// Child outranks parent: rotate it up.
			n = rotateRight(n)
		} else {
			n.recalc()
		}
	default:
		n.right = t.insert(n.right, key)
		if priorityOf(n.right) > n.priority {
			n = rotateLeft(n)
		} else {
			n.recalc()
		}
	}

	return n
}

// Remove drops one occurrence of key. With multiplicity > 1 only the
// counter decrements; the last occurrence splices the node out by
// merging its children. Removing an absent key is a no-op.
func (t *Treap) Remove(key int64) {
	t.root = remove(t.root, key)
}

func remove(n *node, key int64) *node {
	if n == nil {
		return nil
	}

	switch {
	case key < n.key:
		n.left = remove(n.left, key)
		n.recalc()
	case key > n.key:
		n.right = remove(n.right, key)
		n.recalc()
	default:
		if n.count > 1 {
			n.count--
			n.recalc()

			return n
		}
		// Last occurrence: splice the node out entirely.
		return merge(n.left, n.right)
	}

	return n
}

// merge joins two treaps under the precondition that every key in a is
// strictly less than every key in b. The higher-priority root wins,
// keeping both the BST and the heap invariants intact.
func merge(a, b *node) *node {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.priority > b.priority:
		a.right = merge(a.right, b)
		a.recalc()

		return a
	default:
		b.left = merge(a, b.left)
		b.recalc()

		return b
	}
}

// rotateRight lifts y's left child x into y's place. y.left must be
// non-nil.
func rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	y.recalc()
	x.right = y
	x.recalc()

	return x
}

// rotateLeft lifts x's right child y into x's place. x.right must be
// non-nil.
func rotateLeft(x *node) *node {
	y := x.right
	x.right = y.left
	x.recalc()
	y.left = x
	y.recalc()

	return y
}

// InOrder returns the full ascending key sequence, each key repeated per
// its multiplicity. The slice is freshly built on every call.
func (t *Treap) InOrder() []int64 {
	out := make([]int64, 0, t.Len())
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		walk(n.left)
		for i := 0; i < n.count; i++ {
			out = append(out, n.key)
		}
		walk(n.right)
	}
	walk(t.root)

	return out
}
