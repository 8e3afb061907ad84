package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/grocery-list/internal/domain/entity"
)

// Codec converts an entity to and from its stored BSON form.
type Codec[T any] interface {
	Encode(v T) (bson.Raw, error)
	Decode(raw bson.Raw) (T, error)
}

// Wire field names shared by codecs and filters.
const (
	fieldID     = "_id"
	fieldName   = "name"
	fieldUserID = "userId"
)

type userDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
}

type storeDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Categories []string           `bson:"categories"`
}

type listDocument struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Name   string             `bson:"name"`
	UserID primitive.ObjectID `bson:"userId"`
	Items  []listItemDocument `bson:"items"`
}

type listItemDocument struct {
	Name     string  `bson:"name"`
	Category *string `bson:"category"`
	Amount   *string `bson:"amount"`
}

// optionalID maps an unset entity id to the zero ObjectID, which the
// omitempty tag leaves out so the store assigns one.
func optionalID(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid id %q: %w", id, err)
	}
	return oid, nil
}

func hexOrEmpty(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}

// UserCodec stores users in the users collection.
type UserCodec struct{}

func (UserCodec) Encode(u entity.User) (bson.Raw, error) {
	id, err := optionalID(u.ID)
	if err != nil {
		return nil, err
	}
	return bson.Marshal(userDocument{ID: id, Name: u.Name, Email: u.Email})
}

func (UserCodec) Decode(raw bson.Raw) (entity.User, error) {
	var d userDocument
	if err := bson.Unmarshal(raw, &d); err != nil {
		return entity.User{}, err
	}
	return entity.User{ID: hexOrEmpty(d.ID), Name: d.Name, Email: d.Email}, nil
}

// StoreCodec stores stores and their categories.
type StoreCodec struct{}

func (StoreCodec) Encode(s entity.Store) (bson.Raw, error) {
	id, err := optionalID(s.ID)
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(s.Categories))
	categories = append(categories, s.Categories...)
	return bson.Marshal(storeDocument{ID: id, Name: s.Name, Categories: categories})
}

func (StoreCodec) Decode(raw bson.Raw) (entity.Store, error) {
	var d storeDocument
	if err := bson.Unmarshal(raw, &d); err != nil {
		return entity.Store{}, err
	}
	categories := make([]string, 0, len(d.Categories))
	categories = append(categories, d.Categories...)
	return entity.Store{ID: hexOrEmpty(d.ID), Name: d.Name, Categories: categories}, nil
}

// ListCodec stores lists with their items embedded in order. The owner is
// written under the camel-case "userId" field.
type ListCodec struct{}

func (ListCodec) Encode(l entity.List) (bson.Raw, error) {
	id, err := optionalID(l.ID)
	if err != nil {
		return nil, err
	}
	owner, err := primitive.ObjectIDFromHex(l.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", l.UserID, err)
	}
	items := make([]listItemDocument, 0, len(l.Items))
	for _, it := range l.Items {
		items = append(items, listItemDocument{Name: it.Name, Category: it.Category, Amount: it.Amount})
	}
	return bson.Marshal(listDocument{ID: id, Name: l.Name, UserID: owner, Items: items})
}

func (ListCodec) Decode(raw bson.Raw) (entity.List, error) {
	var d listDocument
	if err := bson.Unmarshal(raw, &d); err != nil {
		return entity.List{}, err
	}
	items := make([]entity.ListItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, entity.ListItem{Name: it.Name, Category: it.Category, Amount: it.Amount})
	}
	return entity.List{ID: hexOrEmpty(d.ID), Name: d.Name, UserID: hexOrEmpty(d.UserID), Items: items}, nil
}

var (
	_ Codec[entity.User]  = UserCodec{}
	_ Codec[entity.Store] = StoreCodec{}
	_ Codec[entity.List]  = ListCodec{}
)
