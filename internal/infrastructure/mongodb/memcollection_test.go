package mongodb

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/grocery-list/internal/domain/repository"
)

// memCollection is an in-memory Collection matching filters by top-level
// field equality.
type memCollection struct {
	mu   sync.Mutex
	docs []bson.Raw

	// insertedID, when set, is reported by InsertOne instead of storing.
	insertedID any
	// err, when set, fails every operation.
	err error
}

type memDatabase struct {
	mu    sync.Mutex
	colls map[repository.Collection]*memCollection
}

func newMemDatabase() *memDatabase {
	return &memDatabase{colls: map[repository.Collection]*memCollection{}}
}

func (db *memDatabase) coll(c repository.Collection) *memCollection {
	db.mu.Lock()
	defer db.mu.Unlock()
	mc, ok := db.colls[c]
	if !ok {
		mc = &memCollection{}
		db.colls[c] = mc
	}
	return mc
}

func (db *memDatabase) source() CollectionSource {
	return func(c repository.Collection) Collection { return db.coll(c) }
}

func matches(doc bson.Raw, filter interface{}) bool {
	fb, err := bson.Marshal(filter)
	if err != nil {
		return false
	}
	elems, err := bson.Raw(fb).Elements()
	if err != nil {
		return false
	}
	for _, e := range elems {
		v, err := doc.LookupErr(e.Key())
		if err != nil || !v.Equal(e.Value()) {
			return false
		}
	}
	return true
}

func withID(raw bson.Raw, id primitive.ObjectID) (bson.Raw, error) {
	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	d = append(bson.D{{Key: "_id", Value: id}}, d...)
	return bson.Marshal(d)
}

func (m *memCollection) put(doc interface{}) {
	b, err := bson.Marshal(doc)
	if err != nil {
		panic(err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, bson.Raw(b))
}

func (m *memCollection) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.insertedID != nil {
		return &mongo.InsertOneResult{InsertedID: m.insertedID}, nil
	}
	b, err := bson.Marshal(document)
	if err != nil {
		return nil, err
	}
	raw := bson.Raw(b)
	var id primitive.ObjectID
	if v, err := raw.LookupErr("_id"); err == nil {
		id = v.ObjectID()
	} else {
		id = primitive.NewObjectID()
		if raw, err = withID(raw, id); err != nil {
			return nil, err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, raw)
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

func (m *memCollection) FindOne(_ context.Context, filter interface{}, _ ...*options.FindOneOptions) *mongo.SingleResult {
	if m.err != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, m.err, nil)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.docs {
		if matches(d, filter) {
			return mongo.NewSingleResultFromDocument(d, nil, nil)
		}
	}
	return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
}

func (m *memCollection) Find(_ context.Context, filter interface{}, _ ...*options.FindOptions) (*mongo.Cursor, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []interface{}{}
	for _, d := range m.docs {
		if matches(d, filter) {
			out = append(out, d)
		}
	}
	return mongo.NewCursorFromDocuments(out, nil, nil)
}

func (m *memCollection) ReplaceOne(_ context.Context, filter interface{}, replacement interface{}, _ ...*options.ReplaceOptions) (*mongo.UpdateResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	b, err := bson.Marshal(replacement)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.docs {
		if !matches(d, filter) {
			continue
		}
		raw := bson.Raw(b)
		if _, err := raw.LookupErr("_id"); err != nil {
			if raw, err = withID(raw, d.Lookup("_id").ObjectID()); err != nil {
				return nil, err
			}
		}
		m.docs[i] = raw
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (m *memCollection) DeleteOne(_ context.Context, filter interface{}, _ ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.docs {
		if matches(d, filter) {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (m *memCollection) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}
