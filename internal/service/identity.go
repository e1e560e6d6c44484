package service

import "shrinkr/internal/entities"

type creatorKind int

const (
	creatorAnonymous creatorKind = iota
	creatorOwned
)

// CreatorIdentity says who is creating a URL: an authenticated owner or
// an anonymous caller known only by origin address. Build it with Owned
// or Anonymous.
type CreatorIdentity struct {
	kind    creatorKind
	userID  string
	address string
}

// Owned is an authenticated creator
func Owned(userID string) CreatorIdentity {
	return CreatorIdentity{kind: creatorOwned, userID: userID}
}

// Anonymous is an unauthenticated creator identified by origin address.
// The address is normalized on construction.
func Anonymous(originAddress string) CreatorIdentity {
	return CreatorIdentity{kind: creatorAnonymous, address: NormalizeAddress(originAddress)}
}

func (c CreatorIdentity) IsOwned() bool { return c.kind == creatorOwned }

// UserID is empty for anonymous creators
func (c CreatorIdentity) UserID() string { return c.userID }

// Address is empty for owned creators
func (c CreatorIdentity) Address() string { return c.address }

// apply stamps exactly one of OwnerID or CreatorAddress on the record
func (c CreatorIdentity) apply(url *entities.URL) {
	if c.IsOwned() {
		id := c.userID
		url.OwnerID = &id
		url.CreatorAddress = nil
		return
	}
	addr := c.address
	url.OwnerID = nil
	url.CreatorAddress = &addr
}
