package mongodb

import (
	"context"
	"iter"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/grocery-list/internal/domain/entity"
	"github.com/oksasatya/grocery-list/internal/domain/repository"
)

type GroceryRepository struct {
	users  *Documents[entity.User]
	stores *Documents[entity.Store]
	lists  *Documents[entity.List]
}

func NewGroceryRepository(src CollectionSource, metrics *Metrics) *GroceryRepository {
	return &GroceryRepository{
		users:  NewDocuments[entity.User](src, repository.Users, UserCodec{}, metrics),
		stores: NewDocuments[entity.Store](src, repository.Stores, StoreCodec{}, metrics),
		lists:  NewDocuments[entity.List](src, repository.Lists, ListCodec{}, metrics),
	}
}

func (r *GroceryRepository) AddUser(ctx context.Context, u entity.User) (*entity.User, error) {
	stored, err := r.users.Insert(ctx, u)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *GroceryRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.users.FetchByID(ctx, id)
}

func (r *GroceryRepository) GetUserByName(ctx context.Context, name string) (*entity.User, error) {
	return r.users.FetchByField(ctx, fieldName, name)
}

func (r *GroceryRepository) DeleteUserByID(ctx context.Context, id string) (int64, error) {
	return r.users.DeleteByID(ctx, id)
}

func (r *GroceryRepository) AddStore(ctx context.Context, s entity.Store) (*entity.Store, error) {
	stored, err := r.stores.Insert(ctx, s)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *GroceryRepository) GetStoreByID(ctx context.Context, id string) (*entity.Store, error) {
	return r.stores.FetchByID(ctx, id)
}

func (r *GroceryRepository) DeleteStoreByID(ctx context.Context, id string) (int64, error) {
	return r.stores.DeleteByID(ctx, id)
}

func (r *GroceryRepository) AddList(ctx context.Context, l entity.List) (*entity.List, error) {
	stored, err := r.lists.Insert(ctx, l)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *GroceryRepository) GetListByID(ctx context.Context, id string) (*entity.List, error) {
	return r.lists.FetchByID(ctx, id)
}

func (r *GroceryRepository) DeleteListByID(ctx context.Context, id string) (int64, error) {
	return r.lists.DeleteByID(ctx, id)
}

func (r *GroceryRepository) GetListsByUser(ctx context.Context, userID string) (iter.Seq2[entity.List, error], error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return func(func(entity.List, error) bool) {}, nil
	}
	cur, err := r.lists.FetchMany(ctx, bson.D{{Key: fieldUserID, Value: owner}})
	if err != nil {
		return nil, err
	}
	return cur.All(), nil
}

// AddListItem reads the list, appends item and replaces the whole document.
//
// There is no concurrency guard: two appends racing on the same list can both
// read the same items and the later replace wins, dropping the other item.
func (r *GroceryRepository) AddListItem(ctx context.Context, listID string, item entity.ListItem) (*entity.List, error) {
	list, err := r.lists.FetchByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, &repository.ObjectNotFoundError{ID: listID, Collection: repository.Lists}
	}
	list.AddItem(item)

	updated, err := r.lists.ReplaceByID(ctx, listID, *list)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// deleted between the read and the replace
		return nil, &repository.ObjectNotFoundError{ID: listID, Collection: repository.Lists}
	}
	return updated, nil
}

var _ repository.GroceryRepository = (*GroceryRepository)(nil)
