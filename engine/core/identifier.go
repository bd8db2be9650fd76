package core

import (
	"fmt"
	"sync"
)

var (
	identifierMutex sync.Mutex
	Owners          []interface{}
)

// IdentifierAquireNewID hands out the lowest free id and records its owner.
func IdentifierAquireNewID(owner interface{}) uint32 {
	identifierMutex.Lock()
	defer identifierMutex.Unlock()

	if len(Owners) == 0 {
		Owners = make([]interface{}, 100)
	}
	length := uint32(len(Owners))
	for i := uint32(0); i < length; i++ {
		// Existing free spot. Take it.
		if Owners[i] == nil {
			Owners[i] = owner
			return i
		}
	}

	// If here, no existing free slots. Need a new id, so push one.
	// This means the id will be length - 1
	Owners = append(Owners, owner)
	length = uint32(len(Owners))
	return length - 1
}

func IdentifierReleaseID(id uint32) error {
	identifierMutex.Lock()
	defer identifierMutex.Unlock()

	if len(Owners) == 0 {
		return fmt.Errorf("identifier_release_id called before initialization. identifier_aquire_new_id should have been called first. Nothing was done")
	}

	length := uint32(len(Owners))
	if id >= length {
		return fmt.Errorf("identifier_release_id: id '%d' out of range (max=%d). Nothing was done", id, length)
	}

	// Just zero out the entry, making it available for use.
	Owners[id] = nil
	return nil
}
