package mongodb

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/grocery-list/internal/domain/repository"
)

// Collection is the subset of *mongo.Collection the document engine uses.
type Collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

var _ Collection = (*mongo.Collection)(nil)

// CollectionSource resolves the physical collection backing c.
type CollectionSource func(c repository.Collection) Collection

// DatabaseSource resolves collections by name on db.
func DatabaseSource(db *mongo.Database) CollectionSource {
	return func(c repository.Collection) Collection {
		return db.Collection(c.Name())
	}
}

// Documents performs typed CRUD on one collection. Writes are followed by a
// read of the same id so callers get back what the store holds, not their
// local copy.
type Documents[T any] struct {
	coll       Collection
	collection repository.Collection
	codec      Codec[T]
	metrics    *Metrics
}

func NewDocuments[T any](src CollectionSource, c repository.Collection, codec Codec[T], metrics *Metrics) *Documents[T] {
	return &Documents[T]{coll: src(c), collection: c, codec: codec, metrics: metrics}
}

func (d *Documents[T]) storeErr(op string, err error) error {
	return &repository.StoreError{Op: op, Collection: d.collection, Err: err}
}

// Insert writes doc as a new document and returns the stored version.
func (d *Documents[T]) Insert(ctx context.Context, doc T) (out T, err error) {
	defer d.metrics.observe(d.collection, "insert", time.Now(), &err)

	raw, err := d.codec.Encode(doc)
	if err != nil {
		return out, &repository.SerializationError{Collection: d.collection, Err: err}
	}
	res, err := d.coll.InsertOne(ctx, raw)
	if err != nil {
		return out, d.storeErr("insert", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return out, fmt.Errorf("insert into %s: %w (got %T)", d.collection, repository.ErrIdentifierKindMismatch, res.InsertedID)
	}
	stored, err := d.findOne(ctx, bson.D{{Key: fieldID, Value: oid}})
	if err != nil {
		return out, err
	}
	if stored == nil {
		return out, &repository.ObjectNotFoundError{ID: oid.Hex(), Collection: d.collection}
	}
	return *stored, nil
}

// FetchByID returns nil when nothing is stored under id. A malformed id
// cannot name a stored document and is reported the same way.
func (d *Documents[T]) FetchByID(ctx context.Context, id string) (out *T, err error) {
	defer d.metrics.observe(d.collection, "fetch_by_id", time.Now(), &err)

	oid, perr := primitive.ObjectIDFromHex(id)
	if perr != nil {
		return nil, nil
	}
	return d.findOne(ctx, bson.D{{Key: fieldID, Value: oid}})
}

// FetchByField returns the first document whose field equals value.
func (d *Documents[T]) FetchByField(ctx context.Context, field string, value any) (out *T, err error) {
	defer d.metrics.observe(d.collection, "fetch_by_field", time.Now(), &err)

	return d.findOne(ctx, bson.D{{Key: field, Value: value}})
}

func (d *Documents[T]) findOne(ctx context.Context, filter any) (*T, error) {
	raw, err := d.coll.FindOne(ctx, filter).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, d.storeErr("find", err)
	}
	v, err := d.codec.Decode(raw)
	if err != nil {
		return nil, &repository.DeserializationError{Collection: d.collection, Err: err}
	}
	return &v, nil
}

// FetchMany runs filter and returns a cursor over the matches.
func (d *Documents[T]) FetchMany(ctx context.Context, filter any) (out *Cursor[T], err error) {
	defer d.metrics.observe(d.collection, "fetch_many", time.Now(), &err)

	cur, err := d.coll.Find(ctx, filter)
	if err != nil {
		return nil, d.storeErr("find", err)
	}
	return &Cursor[T]{ctx: ctx, cur: cur, codec: d.codec, collection: d.collection}, nil
}

// ReplaceByID overwrites the whole document stored under id and returns the
// stored version. Nothing checks that the document existed: replacing a
// missing id changes nothing and yields nil.
func (d *Documents[T]) ReplaceByID(ctx context.Context, id string, doc T) (out *T, err error) {
	defer d.metrics.observe(d.collection, "replace_by_id", time.Now(), &err)

	raw, err := d.codec.Encode(doc)
	if err != nil {
		return nil, &repository.SerializationError{Collection: d.collection, Err: err}
	}
	oid, perr := primitive.ObjectIDFromHex(id)
	if perr != nil {
		return nil, nil
	}
	filter := bson.D{{Key: fieldID, Value: oid}}
	if _, err := d.coll.ReplaceOne(ctx, filter, raw); err != nil {
		return nil, d.storeErr("replace", err)
	}
	return d.findOne(ctx, filter)
}

// DeleteByID removes at most one document and reports how many were removed.
func (d *Documents[T]) DeleteByID(ctx context.Context, id string) (n int64, err error) {
	defer d.metrics.observe(d.collection, "delete_by_id", time.Now(), &err)

	oid, perr := primitive.ObjectIDFromHex(id)
	if perr != nil {
		return 0, nil
	}
	res, err := d.coll.DeleteOne(ctx, bson.D{{Key: fieldID, Value: oid}})
	if err != nil {
		return 0, d.storeErr("delete", err)
	}
	return res.DeletedCount, nil
}

// Cursor decodes query results one record at a time.
type Cursor[T any] struct {
	ctx        context.Context
	cur        *mongo.Cursor
	codec      Codec[T]
	collection repository.Collection
	used       atomic.Bool
}

// All yields every remaining record. A record that fails to decode is yielded
// as a DeserializationError and iteration carries on with the next one; a
// cursor failure is yielded last as a StoreError. The cursor is closed once
// iteration ends or the caller stops early, so All can be ranged only once.
func (c *Cursor[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if !c.used.CompareAndSwap(false, true) {
			return
		}
		defer func() { _ = c.cur.Close(c.ctx) }()

		var zero T
		for c.cur.Next(c.ctx) {
			v, err := c.codec.Decode(c.cur.Current)
			if err != nil {
				if !yield(zero, &repository.DeserializationError{Collection: c.collection, Err: err}) {
					return
				}
				continue
			}
			if !yield(v, nil) {
				return
			}
		}
		if err := c.cur.Err(); err != nil {
			yield(zero, &repository.StoreError{Op: "cursor", Collection: c.collection, Err: err})
		}
	}
}

// Close releases the server cursor without ranging it.
func (c *Cursor[T]) Close(ctx context.Context) error {
	if !c.used.CompareAndSwap(false, true) {
		return nil
	}
	return c.cur.Close(ctx)
}
