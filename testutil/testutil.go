package testutil

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/digitalstore/digitalstore-api/config"
	"github.com/digitalstore/digitalstore-api/models"
)

// RequireTestEnvironment ensures that tests are running in the test environment.
// This prevents accidental execution of tests against production or development databases.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: Tests must run with GO_ENV=test to prevent data loss. Current GO_ENV=%q.", env)
	}
}

// SetupTestDB opens a migrated in-memory SQLite database. The pool is pinned
// to one connection so every statement sees the same in-memory database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// CreateCategory inserts a category with the given slug
func CreateCategory(t *testing.T, db *gorm.DB, title, slug string) *models.Category {
	t.Helper()

	c := &models.Category{Title: title, Slug: slug}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}
	return c
}

// ProductOption customizes a product created by CreateProduct
type ProductOption func(p *models.Product)

func WithDiscount(d int) ProductOption {
	return func(p *models.Product) { p.Discount = &d }
}

func WithColor(name, code string) ProductOption {
	return func(p *models.Product) { p.ColorName, p.ColorCode = name, code }
}

func WithBrand(b *models.Brand) ProductOption {
	return func(p *models.Product) { p.BrandID = &b.ID }
}

func WithModel(m *models.ProductModel) ProductOption {
	return func(p *models.Product) { p.ProductModelID = &m.ID }
}

// CreateProduct inserts a product in category c
func CreateProduct(t *testing.T, db *gorm.DB, c *models.Category, slug, price string, quantity int, opts ...ProductOption) *models.Product {
	t.Helper()

	p := &models.Product{
		Title:      slug,
		Slug:       slug,
		Price:      decimal.RequireFromString(price),
		Quantity:   quantity,
		CategoryID: c.ID,
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}
	return p
}

// CreateCustomer inserts a user with its customer and profile records
func CreateCustomer(t *testing.T, db *gorm.DB, auth0ID, email string) (*models.User, *models.Customer) {
	t.Helper()

	u := &models.User{Auth0ID: auth0ID, Username: email, Email: email}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	c := &models.Customer{UserID: &u.ID}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("Failed to create customer: %v", err)
	}
	p := &models.Profile{UserID: &u.ID, Email: email}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
	return u, c
}
