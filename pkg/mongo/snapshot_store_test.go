package mongo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	drv "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/dmitrymomot/humanid/pkg/mongo"
)

type mockCollection struct {
	mock.Mock
}

func (m *mockCollection) FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *drv.SingleResult {
	args := m.Called(ctx, filter)
	return args.Get(0).(*drv.SingleResult)
}

func (m *mockCollection) ReplaceOne(ctx context.Context, filter any, replacement any, opts ...options.Lister[options.ReplaceOptions]) (*drv.UpdateResult, error) {
	args := m.Called(ctx, filter, replacement, len(opts))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drv.UpdateResult), args.Error(1)
}

func (m *mockCollection) DeleteOne(ctx context.Context, filter any, opts ...options.Lister[options.DeleteOneOptions]) (*drv.DeleteResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drv.DeleteResult), args.Error(1)
}

var byKey = bson.D{{Key: "_id", Value: "default"}}

func TestSnapshotStore_Load(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		coll := &mockCollection{}
		doc := bson.D{{Key: "_id", Value: "default"}, {Key: "data", Value: []byte(`{"version":1}`)}}
		coll.On("FindOne", ctx, byKey).Return(drv.NewSingleResultFromDocument(doc, nil, nil)).Once()

		data, err := mongo.NewSnapshotStore(coll).Load(ctx, "default")
		require.NoError(t, err)
		assert.Equal(t, `{"version":1}`, string(data))
		coll.AssertExpectations(t)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		coll := &mockCollection{}
		coll.On("FindOne", ctx, byKey).
			Return(drv.NewSingleResultFromDocument(bson.D{}, drv.ErrNoDocuments, nil)).Once()

		data, err := mongo.NewSnapshotStore(coll).Load(ctx, "default")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("server selection timeout")
		coll := &mockCollection{}
		coll.On("FindOne", ctx, byKey).
			Return(drv.NewSingleResultFromDocument(bson.D{}, boom, nil)).Once()

		_, err := mongo.NewSnapshotStore(coll).Load(ctx, "default")
		assert.ErrorIs(t, err, mongo.ErrFailedToLoadSnapshot)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()
		_, err := mongo.NewSnapshotStore(&mockCollection{}).Load(ctx, "")
		assert.ErrorIs(t, err, mongo.ErrEmptyKey)
	})
}

func TestSnapshotStore_Save(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("upsert", func(t *testing.T) {
		t.Parallel()
		coll := &mockCollection{}
		coll.On("ReplaceOne", ctx, byKey, mock.MatchedBy(func(doc any) bool {
			raw, err := bson.Marshal(doc)
			if err != nil {
				return false
			}
			var got struct {
				ID   string `bson:"_id"`
				Data []byte `bson:"data"`
			}
			if err := bson.Unmarshal(raw, &got); err != nil {
				return false
			}
			return got.ID == "default" && string(got.Data) == "{}"
		}), 1).Return(&drv.UpdateResult{UpsertedCount: 1}, nil).Once()

		require.NoError(t, mongo.NewSnapshotStore(coll).Save(ctx, "default", []byte("{}")))
		coll.AssertExpectations(t)
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("not primary")
		coll := &mockCollection{}
		coll.On("ReplaceOne", ctx, byKey, mock.Anything, 1).Return(nil, boom).Once()

		err := mongo.NewSnapshotStore(coll).Save(ctx, "default", []byte("{}"))
		assert.ErrorIs(t, err, mongo.ErrFailedToSaveSnapshot)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		coll := &mockCollection{}
		coll.On("DeleteOne", ctx, byKey).Return(&drv.DeleteResult{DeletedCount: 1}, nil).Once()

		require.NoError(t, mongo.NewSnapshotStore(coll).Delete(ctx, "default"))
		coll.AssertExpectations(t)
	})
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context, *readpref.ReadPref) error { return p.err }

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	require.NoError(t, mongo.Healthcheck(pinger{})(context.Background()))

	err := mongo.Healthcheck(pinger{err: errors.New("down")})(context.Background())
	assert.ErrorIs(t, err, mongo.ErrHealthcheckFailed)
}

func TestNew_EmptyURL(t *testing.T) {
	t.Parallel()

	_, err := mongo.New(context.Background(), mongo.Config{})
	assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)
}
