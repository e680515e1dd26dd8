package repository

import (
	"context"
	"fmt"

	"bookstore/internal/httpapi/models"

	"gorm.io/gorm"
)

type AuthorRepository interface {
	Create(ctx context.Context, author *models.Author) error
	GetByID(ctx context.Context, id int64) (*models.Author, error)
	List(ctx context.Context) ([]models.Author, error)
}

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, author *models.Author) error {
	if err := r.db.WithContext(ctx).Create(author).Error; err != nil {
		return fmt.Errorf("create author: %w", err)
	}
	return nil
}

func (r *authorRepository) GetByID(ctx context.Context, id int64) (*models.Author, error) {
	var a models.Author
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *authorRepository) List(ctx context.Context) ([]models.Author, error) {
	var list []models.Author
	if err := r.db.WithContext(ctx).Order("surname").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return list, nil
}
