package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-services/catalog-service/internal/config"
	"catalog-services/catalog-service/internal/entity"
	"catalog-services/catalog-service/internal/repository"
	"catalog-services/catalog-service/migrations"
)

type recordedEvent struct {
	key     string
	payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, key string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{key: key, payload: payload})
	return p.err
}

func (p *recordingPublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := make([]string, 0, len(p.events))
	for _, e := range p.events {
		keys = append(keys, e.key)
	}
	return keys
}

func setupServices(t *testing.T, events EventPublisher) (*UserService, *ProductService) {
	t.Helper()

	db, err := config.ConnectDB(config.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.AutoMigrateUsers(config.DriverSQLite, db))
	require.NoError(t, migrations.AutoMigrateProducts(config.DriverSQLite, db))

	logger := zerolog.Nop()
	return NewUserService(repository.NewUserRepository(db), events, logger),
		NewProductService(repository.NewProductRepository(db), events, logger)
}

func TestUserService_NotFound(t *testing.T) {
	users, _ := setupServices(t, NopPublisher{})
	ctx := context.Background()

	_, err := users.GetUserByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	err = users.DeleteUser(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductService_NotFound(t *testing.T) {
	_, products := setupServices(t, NopPublisher{})
	ctx := context.Background()

	_, err := products.GetProductByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	err = products.DeleteProduct(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServices_PublishEvents(t *testing.T) {
	events := &recordingPublisher{}
	users, products := setupServices(t, events)
	ctx := context.Background()

	user, err := users.CreateUser(ctx, &entity.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)
	product, err := products.CreateProduct(ctx, &entity.Product{Name: "Lamp", Price: 12.5})
	require.NoError(t, err)

	require.NoError(t, users.DeleteUser(ctx, user.ID))
	require.NoError(t, products.DeleteProduct(ctx, product.ID))

	assert.Equal(t, []string{
		eventKey("user", "created", user.ID),
		eventKey("product", "created", product.ID),
		eventKey("user", "deleted", user.ID),
		eventKey("product", "deleted", product.ID),
	}, events.keys())
	assert.Equal(t, user, events.events[0].payload)
	assert.Equal(t, DeletedEvent{ID: user.ID}, events.events[2].payload)
	assert.Equal(t, DeletedEvent{ID: product.ID}, events.events[3].payload)
}

func TestServices_PublishFailureDoesNotFailWrite(t *testing.T) {
	events := &recordingPublisher{err: errors.New("broker unavailable")}
	users, _ := setupServices(t, events)
	ctx := context.Background()

	user, err := users.CreateUser(ctx, &entity.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)

	got, err := users.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
}

// blockingPublisher never delivers; it waits until its context ends.
type blockingPublisher struct{}

func (blockingPublisher) Publish(ctx context.Context, _ string, _ any) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestServices_SlowPublisherDoesNotHoldWrites(t *testing.T) {
	saved := publishTimeout
	publishTimeout = 20 * time.Millisecond
	t.Cleanup(func() { publishTimeout = saved })

	users, products := setupServices(t, blockingPublisher{})
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		user, err := users.CreateUser(ctx, &entity.User{Name: "Ann", Email: "ann@x.com"})
		assert.NoError(t, err)
		assert.NoError(t, users.DeleteUser(ctx, user.ID))
		_, err = products.CreateProduct(ctx, &entity.Product{Name: "Lamp", Price: 12.5})
		assert.NoError(t, err)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("writes blocked on event publishing")
	}
}

func TestEventKey(t *testing.T) {
	assert.Equal(t, "user.created.12", eventKey("user", "created", 12))
	assert.Equal(t, "product.deleted.3", eventKey("product", "deleted", 3))
}
