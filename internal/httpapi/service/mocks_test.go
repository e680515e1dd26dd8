package service

// Shared testify mocks for the repository interfaces.

import (
	"context"
	"time"

	"bookstore/internal/httpapi/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithWallet(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id, firstName, lastName, email string) error {
	args := m.Called(ctx, id, firstName, lastName, email)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) EmailsByIDs(ctx context.Context, ids []string) ([]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockRefreshTokenRepository mocks the RefreshTokenRepository interface
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(token *models.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(token string) (*models.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpired() error {
	args := m.Called()
	return args.Error(0)
}

// MockBookRepository mocks the BookRepository interface
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) GetAll(ctx context.Context) ([]models.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) GetPage(ctx context.Context, page, pageSize int) ([]models.Book, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Book), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookRepository) Create(ctx context.Context, b *models.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookRepository) Update(ctx context.Context, id int64, b *models.Book) error {
	args := m.Called(ctx, id, b)
	return args.Error(0)
}

func (m *MockBookRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookRepository) SearchByTitle(ctx context.Context, title string) ([]models.Book, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) SearchByAuthorGenre(ctx context.Context, authorID *int64, genre models.Genre) ([]models.Book, error) {
	args := m.Called(ctx, authorID, genre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) SearchByLanguages(ctx context.Context, languages []models.Language) ([]models.Book, error) {
	args := m.Called(ctx, languages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

// MockAuthorRepository mocks the AuthorRepository interface
type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) Create(ctx context.Context, author *models.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func (m *MockAuthorRepository) GetByID(ctx context.Context, id int64) (*models.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

func (m *MockAuthorRepository) List(ctx context.Context) ([]models.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Author), args.Error(1)
}

// MockTradeRepository mocks the TradeRepository interface
type MockTradeRepository struct {
	mock.Mock
}

func (m *MockTradeRepository) Purchase(ctx context.Context, userID string, bookID int64) (*models.Buy, error) {
	args := m.Called(ctx, userID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Buy), args.Error(1)
}

func (m *MockTradeRepository) Rent(ctx context.Context, userID string, bookID int64, today time.Time) (*models.Rent, error) {
	args := m.Called(ctx, userID, bookID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rent), args.Error(1)
}

func (m *MockTradeRepository) Return(ctx context.Context, rentID int64) error {
	args := m.Called(ctx, rentID)
	return args.Error(0)
}

func (m *MockTradeRepository) FindBuy(ctx context.Context, id int64) (*models.Buy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Buy), args.Error(1)
}

func (m *MockTradeRepository) FindRent(ctx context.Context, id int64) (*models.Rent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rent), args.Error(1)
}

func (m *MockTradeRepository) DeleteBuy(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTradeRepository) DeleteRent(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTradeRepository) ListBuysByUser(ctx context.Context, userID string) ([]models.Buy, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Buy), args.Error(1)
}

func (m *MockTradeRepository) ListRentsByUser(ctx context.Context, userID string) ([]models.Rent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rent), args.Error(1)
}

func (m *MockTradeRepository) ListActiveRents(ctx context.Context) ([]models.Rent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rent), args.Error(1)
}

// MockWalletRepository mocks the WalletRepository interface
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetByUser(ctx context.Context, userID string) (*models.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletRepository) TopUp(ctx context.Context, userID string, amount int64) (*models.Wallet, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

// MockMailer mocks the mail.Mailer interface
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(from string, to []string, subject, body string) error {
	args := m.Called(from, to, subject, body)
	return args.Error(0)
}
