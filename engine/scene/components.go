package scene

import "reflect"

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent attaches c to n, replacing any capability of the same type.
func AddComponent[T any](n *Node, c T) T {
	n.components[typeKey[T]()] = c
	return c
}

// GetComponent returns the capability of type T attached to n.
func GetComponent[T any](n *Node) (T, bool) {
	c, ok := n.components[typeKey[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return c.(T), true
}

func HasComponent[T any](n *Node) bool {
	_, ok := n.components[typeKey[T]()]
	return ok
}

func RemoveComponent[T any](n *Node) bool {
	key := typeKey[T]()
	if _, ok := n.components[key]; !ok {
		return false
	}
	delete(n.components, key)
	return true
}

// EnsureComponent returns the capability of type T on n, attaching the
// result of create first if there is none. Calling it again returns the same
// handle.
func EnsureComponent[T any](n *Node, create func() T) T {
	if c, ok := GetComponent[T](n); ok {
		return c
	}
	return AddComponent(n, create())
}
