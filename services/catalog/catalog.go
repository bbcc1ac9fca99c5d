package catalog

import (
	"context"
	"fmt"
	"strings"

	catalogRepo "bookhouse/database/repository/catalog"
	"bookhouse/models"
	"bookhouse/utils"
)

// CatalogService serves the service catalog and the admin book catalog.
type CatalogService interface {
	GetServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	GetBooks(ctx context.Context) ([]models.Book, error)
	AddBook(ctx context.Context, book models.Book) (*models.InsertResult, error)
	DeleteBookByEmail(ctx context.Context, email string) (*models.DeleteResult, error)
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Services catalogRepo.ServiceRepository
	Books    catalogRepo.BookRepository
}

func (s *DefaultCatalogService) GetServices(ctx context.Context) ([]models.Service, error) {
	return s.Services.GetAll(ctx)
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return s.Services.GetByID(ctx, id)
}

func (s *DefaultCatalogService) GetBooks(ctx context.Context) ([]models.Book, error) {
	return s.Books.GetAll(ctx)
}

func (s *DefaultCatalogService) AddBook(ctx context.Context, book models.Book) (*models.InsertResult, error) {
	if strings.TrimSpace(book.Email) == "" {
		return nil, fmt.Errorf("%w: book owner email is required", utils.ErrInvalidInput)
	}
	id, err := s.Books.Create(ctx, &book)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *DefaultCatalogService) DeleteBookByEmail(ctx context.Context, email string) (*models.DeleteResult, error) {
	n, err := s.Books.DeleteByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: n}, nil
}
