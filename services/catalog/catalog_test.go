package catalog

import (
	"context"
	"testing"

	"bookhouse/database/repository/memory"
	"bookhouse/models"
	"bookhouse/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Services(t *testing.T) {
	ctx := context.Background()
	svc := &DefaultCatalogService{
		Services: memory.NewServiceRepo(models.Service{Name: "Binding", Price: 15}, models.Service{Name: "Restoration", Price: 40}),
		Books:    memory.NewBookRepo(),
	}

	all, err := svc.GetServices(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	one, err := svc.GetService(ctx, all[1].ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Restoration", one.Name)

	_, err = svc.GetService(ctx, "0123456789abcdef01234567")
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = svc.GetService(ctx, "nope")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCatalogService_Books(t *testing.T) {
	ctx := context.Background()
	svc := &DefaultCatalogService{Services: memory.NewServiceRepo(), Books: memory.NewBookRepo()}

	_, err := svc.AddBook(ctx, models.Book{Name: "No owner"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	res, err := svc.AddBook(ctx, models.Book{Email: "owner@x.com", Name: "Gitanjali", Price: 12})
	require.NoError(t, err)
	assert.NotEmpty(t, res.InsertedID)

	books, err := svc.GetBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)

	del, err := svc.DeleteBookByEmail(ctx, "owner@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	del, err = svc.DeleteBookByEmail(ctx, "owner@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), del.DeletedCount)
}
