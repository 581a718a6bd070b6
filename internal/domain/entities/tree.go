package entities

// Tree is one locale resource source: an ordered mapping from key segment to a
// string leaf or a nested Tree.
type Tree struct {
	entries []Entry
	index   map[string]int
}

// Entry is a single key of a Tree. Child is nil for leaves.
type Entry struct {
	Key   string
	Value string
	Kind  Kind
	Child *Tree
}

// Leaf returns the scalar held by a leaf entry.
func (e Entry) Leaf() Leaf {
	return Leaf{Value: e.Value, Kind: e.Kind}
}

// IsBranch reports whether the entry holds a nested tree.
func (e Entry) IsBranch() bool {
	return e.Child != nil
}

func NewTree() *Tree {
	return &Tree{index: make(map[string]int)}
}

// Set stores a text leaf. An existing key keeps its position and is replaced.
func (t *Tree) Set(key, value string) {
	t.SetLeaf(key, Leaf{Value: value})
}

func (t *Tree) SetLeaf(key string, leaf Leaf) {
	e := Entry{Key: key, Value: leaf.Value, Kind: leaf.Kind}
	if i, ok := t.index[key]; ok {
		t.entries[i] = e
		return
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, e)
}

// Branch walks down path, creating missing subtrees, and returns the last one.
// A leaf found on the way is replaced by an empty subtree.
func (t *Tree) Branch(path ...string) *Tree {
	current := t
	for _, key := range path {
		i, ok := current.index[key]
		if ok && current.entries[i].Child != nil {
			current = current.entries[i].Child
			continue
		}
		child := NewTree()
		if ok {
			current.entries[i] = Entry{Key: key, Child: child}
		} else {
			current.index[key] = len(current.entries)
			current.entries = append(current.entries, Entry{Key: key, Child: child})
		}
		current = child
	}
	return current
}

// Entries returns the entries in insertion order.
func (t *Tree) Entries() []Entry {
	return t.entries
}

func (t *Tree) Len() int {
	return len(t.entries)
}

// Leaves counts the leaves of the whole tree.
func (t *Tree) Leaves() int {
	n := 0
	for _, e := range t.entries {
		if e.IsBranch() {
			n += e.Child.Leaves()
			continue
		}
		n++
	}
	return n
}

// Flatten walks tree depth-first and returns its leaves keyed by their dotted
// path, prefixed with prefix. A nested branch is merged as a plain union: a key
// already present is kept.
func Flatten(tree *Tree, prefix string) *FlatMap {
	out := NewFlatMap()
	if tree == nil {
		return out
	}
	for _, e := range tree.entries {
		if e.IsBranch() {
			out.Union(Flatten(e.Child, prefix+e.Key+"."))
			continue
		}
		out.SetLeaf(prefix+e.Key, e.Leaf())
	}
	return out
}
