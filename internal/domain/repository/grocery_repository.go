package repository

import (
	"context"
	"iter"

	"github.com/oksasatya/grocery-list/internal/domain/entity"
)

// GroceryRepository defines the typed document operations for users, stores
// and lists. Getters return a nil entity and a nil error when nothing is
// stored under the given key.
type GroceryRepository interface {
	AddUser(ctx context.Context, u entity.User) (*entity.User, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetUserByName(ctx context.Context, name string) (*entity.User, error)
	DeleteUserByID(ctx context.Context, id string) (int64, error)

	AddStore(ctx context.Context, s entity.Store) (*entity.Store, error)
	GetStoreByID(ctx context.Context, id string) (*entity.Store, error)
	DeleteStoreByID(ctx context.Context, id string) (int64, error)

	AddList(ctx context.Context, l entity.List) (*entity.List, error)
	GetListByID(ctx context.Context, id string) (*entity.List, error)
	DeleteListByID(ctx context.Context, id string) (int64, error)
	// GetListsByUser yields every list owned by userID. Records that fail to
	// decode are yielded as errors in place; the sequence can be ranged once.
	GetListsByUser(ctx context.Context, userID string) (iter.Seq2[entity.List, error], error)
	// AddListItem appends item to the list and returns the stored result.
	AddListItem(ctx context.Context, listID string, item entity.ListItem) (*entity.List, error)
}
