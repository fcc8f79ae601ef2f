// Package attrtree implements the nested attribute mapping sent to (and
// diffed against) the remote payment processor's account objects.
package attrtree

import "reflect"

// Tree is a nested attribute mapping: string key -> scalar, Tree, or list.
// Trees are transient; they are never persisted.
type Tree map[string]any

// New returns an empty tree.
func New() Tree {
	return Tree{}
}

// Clone returns a deep copy of the tree.
func (t Tree) Clone() Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		switch val := v.(type) {
		case Tree:
			out[k] = val.Clone()
		case []any:
			cp := make([]any, len(val))
			copy(cp, val)
			out[k] = cp
		default:
			out[k] = v
		}
	}
	return out
}

// Set stores value at the given path, creating intermediate subtrees as
// needed. An existing leaf in the middle of the path is overwritten.
func (t Tree) Set(value any, path ...string) {
	if len(path) == 0 {
		return
	}
	node := t
	for _, key := range path[:len(path)-1] {
		child, ok := node[key].(Tree)
		if !ok {
			child = Tree{}
			node[key] = child
		}
		node = child
	}
	node[path[len(path)-1]] = value
}

// Get returns the value at path and whether it exists.
func (t Tree) Get(path ...string) (any, bool) {
	var cur any = t
	for _, key := range path {
		node, ok := cur.(Tree)
		if !ok {
			return nil, false
		}
		cur, ok = node[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Subtree returns the subtree at path, or nil if the path does not resolve
// to a tree.
func (t Tree) Subtree(path ...string) Tree {
	v, ok := t.Get(path...)
	if !ok {
		return nil
	}
	sub, _ := v.(Tree)
	return sub
}

// Delete removes the value at path. Missing intermediate nodes are a no-op.
func (t Tree) Delete(path ...string) {
	if len(path) == 0 {
		return
	}
	node := t
	for _, key := range path[:len(path)-1] {
		child, ok := node[key].(Tree)
		if !ok {
			return
		}
		node = child
	}
	delete(node, path[len(path)-1])
}

// IsEmpty returns true for a tree with no keys.
func (t Tree) IsEmpty() bool {
	return len(t) == 0
}

// Prune returns a copy of the tree with blank leaves (nil, empty string)
// and empty subtrees removed. The remote API rejects explicit nulls in
// several contexts, so trees are always pruned before submission.
func (t Tree) Prune() Tree {
	out := Tree{}
	for k, v := range t {
		switch val := v.(type) {
		case Tree:
			sub := val.Prune()
			if !sub.IsEmpty() {
				out[k] = sub
			}
		case nil:
			// dropped
		case string:
			if val != "" {
				out[k] = val
			}
		default:
			out[k] = v
		}
	}
	return out
}

// Merge deep-merges src into dst and returns dst. Subtrees are merged
// recursively; scalar conflicts resolve in favor of src.
func Merge(dst, src Tree) Tree {
	for k, v := range src {
		srcSub, srcIsTree := v.(Tree)
		dstSub, dstIsTree := dst[k].(Tree)
		if srcIsTree && dstIsTree {
			Merge(dstSub, srcSub)
			continue
		}
		if srcIsTree {
			dst[k] = srcSub.Clone()
			continue
		}
		dst[k] = v
	}
	return dst
}

// Diff returns the minimal tree of leaves that are new or changed in
// current relative to previous. Leaves equal in both trees are dropped;
// keys present only in previous are ignored (the processor API has no
// delete semantics in updates). Empty subtrees are stripped from the result.
func Diff(current, previous Tree) Tree {
	out := Tree{}
	for k, cur := range current {
		prev, inPrev := previous[k]
		if !inPrev {
			out[k] = cloneValue(cur)
			continue
		}
		curSub, curIsTree := cur.(Tree)
		prevSub, prevIsTree := prev.(Tree)
		if curIsTree && prevIsTree {
			sub := Diff(curSub, prevSub)
			if !sub.IsEmpty() {
				out[k] = sub
			}
			continue
		}
		if !leafEqual(cur, prev) {
			out[k] = cloneValue(cur)
		}
	}
	return out.Prune()
}

func cloneValue(v any) any {
	if sub, ok := v.(Tree); ok {
		return sub.Clone()
	}
	return v
}

// leafEqual compares two leaves. reflect.DeepEqual covers list leaves and
// mixed numeric representations that survived JSON round-trips.
func leafEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
