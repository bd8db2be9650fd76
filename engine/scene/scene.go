package scene

// Scene owns a tree of nodes below a root that sits at the world origin.
type Scene struct {
	Root *Node
}

func NewScene(name string) *Scene {
	return &Scene{Root: NewNode(name)}
}

// Find returns the first node called name, the root included.
func (s *Scene) Find(name string) *Node {
	if s.Root.Name == name {
		return s.Root
	}
	return s.Root.FindChild(name)
}

// FindOrCreate returns the node called name, adding it under the root if missing.
func (s *Scene) FindOrCreate(name string) *Node {
	if n := s.Find(name); n != nil {
		return n
	}
	n := NewNode(name)
	s.Root.AddChild(n)
	return n
}
