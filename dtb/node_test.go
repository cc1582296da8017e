package dtb

import (
	"testing"
)

func smallTree() *Node {
	return &Node{
		Path: "/",
		Children: []*Node{
			{
				Name: "a", Path: "/a",
				Children: []*Node{
					{Name: "a1", Path: "/a/a1"},
					{Name: "a2", Path: "/a/a2"},
				},
			},
			{Name: "b", Path: "/b"},
		},
	}
}

func TestWalkOrder(t *testing.T) {
	var paths []string
	smallTree().Walk(func(n *Node, _ int) bool {
		paths = append(paths, n.Path)
		return true
	})
	want := []string{"/", "/a", "/a/a1", "/a/a2", "/b"}
	if len(paths) != len(want) {
		t.Fatalf("visited %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("visited %v, want %v", paths, want)
		}
	}
}

func TestWalkEarlyStop(t *testing.T) {
	var visited int
	smallTree().Walk(func(n *Node, _ int) bool {
		visited++
		return n.Path != "/a"
	})
	if visited != 2 {
		t.Fatalf("visited %d nodes after early stop, want 2", visited)
	}
}

func TestFind(t *testing.T) {
	tree := smallTree()
	if n := tree.Find("/a/a2"); n == nil || n.Name != "a2" {
		t.Fatalf("Find(/a/a2) = %+v", n)
	}
	if n := tree.Find("/missing"); n != nil {
		t.Fatalf("Find(/missing) = %+v, want nil", n)
	}
	if n := tree.Find("/"); n != tree {
		t.Fatal("Find(/) did not return the root")
	}
}

func TestPropLookup(t *testing.T) {
	n := &Node{}
	n.setProp("reg", []byte{1})
	n.setProp("status", []byte("okay\x00"))
	n.setProp("reg", []byte{2})

	v, ok := n.Prop("reg")
	if !ok || len(v) != 1 || v[0] != 2 {
		t.Fatalf("Prop(reg) = %x, %v", v, ok)
	}
	if _, ok := n.Prop("missing"); ok {
		t.Fatal("Prop(missing) reported present")
	}
	if len(n.Props) != 2 {
		t.Fatalf("props length %d, want 2", len(n.Props))
	}
}

func TestWalkNilReceiver(t *testing.T) {
	var n *Node
	n.Walk(func(*Node, int) bool {
		t.Fatal("callback on nil tree")
		return false
	})
}
