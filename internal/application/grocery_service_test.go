package application

import (
	"context"
	"errors"
	"io"
	"iter"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/grocery-list/internal/domain/entity"
	"github.com/oksasatya/grocery-list/internal/domain/repository"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) AddUser(ctx context.Context, u entity.User) (*entity.User, error) {
	args := m.Called(ctx, u)
	out, _ := args.Get(0).(*entity.User)
	return out, args.Error(1)
}

func (m *mockRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*entity.User)
	return out, args.Error(1)
}

func (m *mockRepo) GetUserByName(ctx context.Context, name string) (*entity.User, error) {
	args := m.Called(ctx, name)
	out, _ := args.Get(0).(*entity.User)
	return out, args.Error(1)
}

func (m *mockRepo) DeleteUserByID(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) AddStore(ctx context.Context, s entity.Store) (*entity.Store, error) {
	args := m.Called(ctx, s)
	out, _ := args.Get(0).(*entity.Store)
	return out, args.Error(1)
}

func (m *mockRepo) GetStoreByID(ctx context.Context, id string) (*entity.Store, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*entity.Store)
	return out, args.Error(1)
}

func (m *mockRepo) DeleteStoreByID(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) AddList(ctx context.Context, l entity.List) (*entity.List, error) {
	args := m.Called(ctx, l)
	out, _ := args.Get(0).(*entity.List)
	return out, args.Error(1)
}

func (m *mockRepo) GetListByID(ctx context.Context, id string) (*entity.List, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*entity.List)
	return out, args.Error(1)
}

func (m *mockRepo) DeleteListByID(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) GetListsByUser(ctx context.Context, userID string) (iter.Seq2[entity.List, error], error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).(iter.Seq2[entity.List, error])
	return out, args.Error(1)
}

func (m *mockRepo) AddListItem(ctx context.Context, listID string, item entity.ListItem) (*entity.List, error) {
	args := m.Called(ctx, listID, item)
	out, _ := args.Get(0).(*entity.List)
	return out, args.Error(1)
}

var _ repository.GroceryRepository = (*mockRepo)(nil)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	r := new(mockRepo)
	svc := NewService(r, quietLogger())

	r.On("AddUser", ctx, entity.User{Name: "foo", Email: "foo@bar.com"}).
		Return(&entity.User{ID: "64b7f0c2a1b2c3d4e5f60718", Name: "foo", Email: "foo@bar.com"}, nil)

	u, err := svc.CreateUser(ctx, "foo", "foo@bar.com")
	require.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", u.ID)
	r.AssertExpectations(t)
}

func TestCreateUserValidatesBeforeStoring(t *testing.T) {
	r := new(mockRepo)
	svc := NewService(r, quietLogger())

	_, err := svc.CreateUser(context.Background(), "", "foo@bar.com")
	assert.ErrorIs(t, err, entity.ErrUserNameRequired)
	r.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything)
}

func TestCreateUserPassesStoreErrorThrough(t *testing.T) {
	ctx := context.Background()
	r := new(mockRepo)
	svc := NewService(r, quietLogger())
	storeErr := &repository.StoreError{Op: "insert", Collection: repository.Users, Err: errors.New("down")}
	r.On("AddUser", ctx, mock.Anything).Return(nil, storeErr)

	_, err := svc.CreateUser(ctx, "foo", "foo@bar.com")
	assert.Same(t, storeErr, err)
}

func TestCreateListBuildsItems(t *testing.T) {
	ctx := context.Background()
	r := new(mockRepo)
	svc := NewService(r, quietLogger())

	r.On("AddList", ctx, mock.MatchedBy(func(l entity.List) bool {
		return len(l.Items) == 2 && l.Items[0].CategoryOrEmpty() == "meat" && l.Items[1].Name == "brocc"
	})).Return(&entity.List{ID: "x"}, nil)

	_, err := svc.CreateList(ctx, "weekly", "owner", []ItemInput{
		{Name: "salmon", Category: "Meat", Amount: "2lb"},
		{Name: "brocc", Category: "veg", Amount: "1"},
	})
	require.NoError(t, err)
	r.AssertExpectations(t)

	_, err = svc.CreateList(ctx, "weekly", "owner", []ItemInput{{Name: ""}})
	assert.ErrorIs(t, err, entity.ErrListItemNameRequired)
}

func TestAddListItemNotFound(t *testing.T) {
	ctx := context.Background()
	r := new(mockRepo)
	svc := NewService(r, quietLogger())
	nf := &repository.ObjectNotFoundError{ID: "abc", Collection: repository.Lists}
	r.On("AddListItem", ctx, "abc", mock.Anything).Return(nil, nf)

	_, err := svc.AddListItem(ctx, "abc", ItemInput{Name: "milk"})
	assert.True(t, repository.IsNotFound(err))
}

func TestListsForUserSkipsBadRecords(t *testing.T) {
	ctx := context.Background()
	r := new(mockRepo)
	svc := NewService(r, quietLogger())
	bad := &repository.DeserializationError{Collection: repository.Lists, Err: errors.New("bad")}
	seq := iter.Seq2[entity.List, error](func(yield func(entity.List, error) bool) {
		if !yield(entity.List{ID: "1"}, nil) {
			return
		}
		if !yield(entity.List{}, bad) {
			return
		}
		yield(entity.List{ID: "3"}, nil)
	})
	r.On("GetListsByUser", ctx, "u").Return(seq, nil)

	lists, err := svc.ListsForUser(ctx, "u")
	assert.Same(t, bad, err)
	require.Len(t, lists, 2)
	assert.Equal(t, "1", lists[0].ID)
	assert.Equal(t, "3", lists[1].ID)
}
