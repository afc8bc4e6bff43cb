package auth_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Sagar00752/hrms/pkg/auth"
	"github.com/Sagar00752/hrms/pkg/mongo"
)

// testDatabase returns a throwaway database on the server named by
// MONGO_TEST_URI and drops it when the test ends.
func testDatabase(t *testing.T) *driver.Database {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx := context.Background()
	cfg := mongo.Config{
		URI:            uri,
		Database:       "hrms_test_" + uuid.NewString()[:8],
		ConnectTimeout: 5 * time.Second,
		MaxPoolSize:    4,
		RetryAttempts:  1,
	}
	client, err := mongo.Connect(ctx, cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	db := client.Database(cfg.Database)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

func TestMongoStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage, err := auth.NewMongoStorage(ctx, testDatabase(t))
	require.NoError(t, err)

	user := &auth.User{
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: "hash",
		Role:         auth.RoleAdmin,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, storage.CreateUser(ctx, user))
	require.False(t, user.ID.IsZero())

	t.Run("unique email", func(t *testing.T) {
		dup := &auth.User{Name: "Other", Email: "asha@example.com", PasswordHash: "x", Role: auth.RoleUser}
		assert.ErrorIs(t, storage.CreateUser(ctx, dup), auth.ErrEmailAlreadyExists)
	})

	t.Run("lookup", func(t *testing.T) {
		byEmail, err := storage.GetUserByEmail(ctx, "asha@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
		assert.Equal(t, "hash", byEmail.PasswordHash)

		byID, err := storage.GetUserByID(ctx, user.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, user.Email, byID.Email)

		_, err = storage.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
		_, err = storage.GetUserByID(ctx, bson.NewObjectID().Hex())
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
		_, err = storage.GetUserByID(ctx, "not-hex")
		assert.ErrorIs(t, err, auth.ErrInvalidUserID)
	})

	t.Run("token lifecycle", func(t *testing.T) {
		expires := time.Now().Add(time.Hour).UTC().Truncate(time.Millisecond)
		require.NoError(t, storage.StoreToken(ctx, user.ID.Hex(), "tok", expires))

		got, err := storage.GetUserByID(ctx, user.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "tok", got.Token)
		require.NotNil(t, got.TokenExpires)
		assert.True(t, expires.Equal(*got.TokenExpires))

		require.NoError(t, storage.ClearToken(ctx, user.ID.Hex()))
		got, err = storage.GetUserByID(ctx, user.ID.Hex())
		require.NoError(t, err)
		assert.Empty(t, got.Token)
		assert.Nil(t, got.TokenExpires)

		assert.ErrorIs(t, storage.ClearToken(ctx, bson.NewObjectID().Hex()), auth.ErrUserNotFound)
	})
}
