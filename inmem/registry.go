package inmem

import (
	"sort"
	"sync"

	"github.com/lukasz-zimnoch/dexly/identity"
)

// IdentifierRegistry is a registry of known identifiers keyed by
// their value and category. The value types themselves need no
// synchronization; the registry guards its own map.
type IdentifierRegistry struct {
	identifiersMutex sync.RWMutex
	identifiers      map[identity.Identifier]bool
}

func NewIdentifierRegistry() *IdentifierRegistry {
	return &IdentifierRegistry{
		identifiers: make(map[identity.Identifier]bool),
	}
}

func (ir *IdentifierRegistry) Register(
	identifiers ...identity.Identifier,
) {
	ir.identifiersMutex.Lock()
	defer ir.identifiersMutex.Unlock()

	for _, identifier := range identifiers {
		ir.identifiers[identifier] = true
	}
}

func (ir *IdentifierRegistry) Contains(
	identifier identity.Identifier,
) bool {
	ir.identifiersMutex.RLock()
	defer ir.identifiersMutex.RUnlock()

	return ir.identifiers[identifier]
}

func (ir *IdentifierRegistry) Identifiers(
	category string,
) []identity.Identifier {
	ir.identifiersMutex.RLock()
	defer ir.identifiersMutex.RUnlock()

	snapshot := make([]identity.Identifier, 0)
	for identifier := range ir.identifiers {
		if identifier.Category() == category {
			snapshot = append(snapshot, identifier)
		}
	}

	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].Value() < snapshot[j].Value()
	})

	return snapshot
}

func (ir *IdentifierRegistry) Delete(identifier identity.Identifier) {
	ir.identifiersMutex.Lock()
	defer ir.identifiersMutex.Unlock()

	delete(ir.identifiers, identifier)
}

func (ir *IdentifierRegistry) Size() int {
	ir.identifiersMutex.RLock()
	defer ir.identifiersMutex.RUnlock()

	return len(ir.identifiers)
}
