package uuid

import (
	"github.com/google/uuid"
	"github.com/lukasz-zimnoch/dexly/identity"
)

type GUIDService struct{}

func (gs *GUIDService) NewGUID() identity.GUID {
	guid, err := identity.NewGUID(uuid.New().String())
	if err != nil {
		// generated values are always canonical
		panic(err)
	}

	return guid
}

func (gs *GUIDService) NewGUIDFromString(raw string) (identity.GUID, error) {
	return identity.NewGUID(raw)
}
