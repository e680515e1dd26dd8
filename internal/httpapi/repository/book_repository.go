package repository

import (
	"context"
	"fmt"

	"bookstore/internal/httpapi/models"

	"gorm.io/gorm"
)

type BookRepository interface {
	GetAll(ctx context.Context) ([]models.Book, error)
	GetPage(ctx context.Context, page, pageSize int) ([]models.Book, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, b *models.Book) error
	Update(ctx context.Context, id int64, b *models.Book) error
	Delete(ctx context.Context, id int64) error
	SearchByTitle(ctx context.Context, title string) ([]models.Book, error)
	SearchByAuthorGenre(ctx context.Context, authorID *int64, genre models.Genre) ([]models.Book, error)
	SearchByLanguages(ctx context.Context, languages []models.Language) ([]models.Book, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) GetAll(ctx context.Context) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).Preload("Author").Order("title").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return list, nil
}

// GetPage returns one page of the staff book list plus the total count.
func (r *bookRepository) GetPage(ctx context.Context, page, pageSize int) ([]models.Book, int64, error) {
	var list []models.Book
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Book{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Order("title").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).Preload("Author").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) Create(ctx context.Context, b *models.Book) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *bookRepository) Update(ctx context.Context, id int64, b *models.Book) error {
	b.ID = id
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Book{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchByTitle performs a case-insensitive substring match on title.
func (r *bookRepository) SearchByTitle(ctx context.Context, title string) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("title ILIKE ?", "%"+title+"%").
		Order("title").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search books by title: %w", err)
	}
	return list, nil
}

// SearchByAuthorGenre intersects the author and genre filters when both
// are present, otherwise filters on whichever one was given.
func (r *bookRepository) SearchByAuthorGenre(ctx context.Context, authorID *int64, genre models.Genre) ([]models.Book, error) {
	var list []models.Book
	q := r.db.WithContext(ctx).Preload("Author")
	if authorID != nil {
		q = q.Where("author_id = ?", *authorID)
	}
	if genre != "" {
		q = q.Where("genre = ?", genre)
	}
	if err := q.Order("title").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search books by author/genre: %w", err)
	}
	return list, nil
}

// SearchByLanguages returns the union of books in any selected language.
func (r *bookRepository) SearchByLanguages(ctx context.Context, languages []models.Language) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("language IN ?", languages).
		Order("title").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search books by language: %w", err)
	}
	return list, nil
}
