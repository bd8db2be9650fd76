package scene

import (
	"reflect"

	"github.com/spaghettifunk/anima-bake/engine/core"
	"github.com/spaghettifunk/anima-bake/engine/math"
)

// Node is an element of the host scene: a named transform with children and
// a set of capabilities, at most one per type.
type Node struct {
	ID        uint32
	Name      string
	Transform *math.Transform

	parent     *Node
	children   []*Node
	components map[reflect.Type]interface{}
}

func NewNode(name string) *Node {
	n := &Node{
		Name:       name,
		Transform:  math.TransformCreate(),
		components: make(map[reflect.Type]interface{}),
	}
	n.ID = core.IdentifierAquireNewID(n)
	return n
}

// Destroy detaches the node from its parent and releases its id.
func (n *Node) Destroy() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
	if err := core.IdentifierReleaseID(n.ID); err != nil {
		core.LogWarn("releasing node %q: %s", n.Name, err)
	}
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Children() []*Node {
	return n.children
}

// AddChild reparents child under n. The child keeps its local transform.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	child.Transform.SetParent(n.Transform)
	n.children = append(n.children, child)
}

func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			child.Transform.SetParent(nil)
			return true
		}
	}
	return false
}

// FindChild searches the subtree below n, depth first, for a node called name.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
		if found := c.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// LocalToWorld is the matrix taking points from node space to world space.
func (n *Node) LocalToWorld() math.Mat4 {
	return n.Transform.GetWorld()
}

// WorldToLocal is the inverse of LocalToWorld.
func (n *Node) WorldToLocal() math.Mat4 {
	return n.LocalToWorld().Inverse()
}
