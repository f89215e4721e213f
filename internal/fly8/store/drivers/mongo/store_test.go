package mongo_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store/drivers/mongo"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store/storetest"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func setupMongo(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping mongo container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForLog("Waiting for connections").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "failed to start mongo container")

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	return fmt.Sprintf("mongodb://%s:%s", host, port.Port())
}

// opener gives every caller its own database on the shared server.
func opener(uri string) storetest.Opener {
	var seq atomic.Int64

	return func(t *testing.T) store.Store {
		return openDatabase(t, uri, fmt.Sprintf("fly8_%d", seq.Add(1)))
	}
}

func openDatabase(t *testing.T, uri, name string) store.Store {
	t.Helper()
	ctx := context.Background()

	st, err := mongo.NewStore(ctx, uri, name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations(ctx))
	return st
}

func TestConformance(t *testing.T) {
	uri := setupMongo(t)
	open := opener(uri)

	storetest.Run(t, open)

	t.Run("ApplyMigrationsTwice", func(t *testing.T) {
		st := open(t)
		require.NoError(t, st.ApplyMigrations(context.Background()))
	})

	t.Run("StoredRecordsAreCheckedOnRead", func(t *testing.T) {
		ctx := context.Background()
		st := openDatabase(t, uri, "fly8_raw")

		client, err := mongodriver.Connect(options.Client().ApplyURI(uri))
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

		users := client.Database("fly8_raw").Collection("users")
		_, err = users.InsertMany(ctx, []any{
			bson.M{
				"_id": "u-norole", "email": "norole@fly8.com", "password": "x",
				"firstName": "No", "lastName": "Role", "isActive": true, "createdAt": time.Now(),
			},
			bson.M{
				"_id": "u-janitor", "email": "janitor@fly8.com", "password": "x", "role": "janitor",
				"firstName": "Jan", "lastName": "Itor", "isActive": true, "createdAt": time.Now(),
			},
		})
		require.NoError(t, err)

		_, err = st.Users().GetUserByID(ctx, "u-norole")
		require.ErrorIs(t, err, store.ErrInvalidRecord)
		_, err = st.Users().GetUserByEmail(ctx, "janitor@fly8.com")
		require.ErrorIs(t, err, store.ErrInvalidRecord)

		_, err = client.Database("fly8_raw").Collection("service_applications").InsertOne(ctx, bson.M{
			"_id": "a-bad", "studentId": "s-1", "serviceId": "svc", "status": "archived",
			"progress": 0, "createdAt": time.Now(),
		})
		require.NoError(t, err)
		_, err = st.Applications().GetApplicationByID(ctx, "a-bad")
		require.ErrorIs(t, err, store.ErrInvalidRecord)
	})

	t.Run("EmailUniqueIndex", func(t *testing.T) {
		st := open(t)
		ctx := context.Background()

		require.NoError(t, st.Users().CreateUser(ctx, storetest.NewUser("dup@fly8.com", domain.RoleStudent)))
		err := st.Users().CreateUser(ctx, storetest.NewUser("dup@fly8.com", domain.RoleAgent))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}
