package catalogRepo

import (
	"context"

	"bookhouse/models"
)

// ServiceRepository reads the bookable service catalog.
type ServiceRepository interface {
	GetAll(ctx context.Context) ([]models.Service, error)
	// GetByID yields utils.ErrNotFound for unknown ids.
	GetByID(ctx context.Context, id string) (*models.Service, error)
}

// BookRepository manages catalog books.
type BookRepository interface {
	GetAll(ctx context.Context) ([]models.Book, error)
	Create(ctx context.Context, book *models.Book) (string, error)
	// DeleteByEmail removes at most one book owned by email.
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}
