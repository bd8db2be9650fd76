package hapi

import (
	"github.com/spaghettifunk/anima-bake/engine/scene"
)

// Asset is the host side of an instantiated procedural asset. It owns the
// scene node its objects hang under and the object records themselves.
type Asset struct {
	ID   int
	Name string
	Node *scene.Node

	objects []*ObjectControl
}

func NewAsset(id int, name string) *Asset {
	return &Asset{
		ID:   id,
		Name: name,
		Node: scene.NewNode(name),
	}
}

// AddObject creates a record for a remote object, with its own node below
// the asset node.
func (a *Asset) AddObject(objectID int, name string, visible bool) *ObjectControl {
	node := scene.NewNode(name)
	a.Node.AddChild(node)

	oc := NewObjectControl(node)
	oc.Init(a.ID, a, objectID, name, visible)
	a.objects = append(a.objects, oc)
	return oc
}

func (a *Asset) Objects() []*ObjectControl {
	return a.objects
}

// Object looks a record up by its remote object id.
func (a *Asset) Object(objectID int) (*ObjectControl, bool) {
	for _, oc := range a.objects {
		if oc.ObjectID() == objectID {
			return oc, true
		}
	}
	return nil, false
}
