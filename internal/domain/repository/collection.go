package repository

import "fmt"

// Collection identifies the kind of entity stored in a physical collection.
type Collection int

const (
	Users Collection = iota
	Stores
	Lists

	collectionCount
)

var collectionNames = [...]string{
	Users:  "users",
	Stores: "stores",
	Lists:  "lists",
}

// fails to compile when a Collection is added without a name
var _ = [1]struct{}{}[len(collectionNames)-int(collectionCount)]

// Name returns the physical collection name.
func (c Collection) Name() string {
	if c < 0 || c >= collectionCount {
		return fmt.Sprintf("collection(%d)", int(c))
	}
	return collectionNames[c]
}

func (c Collection) String() string { return c.Name() }

// AllCollections lists every known collection in declaration order.
func AllCollections() []Collection {
	out := make([]Collection, 0, collectionCount)
	for c := Collection(0); c < collectionCount; c++ {
		out = append(out, c)
	}
	return out
}
