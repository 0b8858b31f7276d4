package repository

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/digitalstore/digitalstore-api/models"
)

type CategoryRepo interface {
	Create(ctx context.Context, c *models.Category) error
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	SetIcon(ctx context.Context, id uint, key string) error
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) CategoryRepo { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *models.Category) error {
	return duplicate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *categoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var c models.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *categoryRepo) SetIcon(ctx context.Context, id uint, key string) error {
	return r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Update("icon_s3_key", key).Error
}

type BrandRepo interface {
	Create(ctx context.Context, b *models.Brand) error
	GetByID(ctx context.Context, id uint) (*models.Brand, error)
	List(ctx context.Context) ([]models.Brand, error)
}

type brandRepo struct{ db *gorm.DB }

func NewBrandRepo(db *gorm.DB) BrandRepo { return &brandRepo{db: db} }

func (r *brandRepo) Create(ctx context.Context, b *models.Brand) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *brandRepo) GetByID(ctx context.Context, id uint) (*models.Brand, error) {
	var b models.Brand
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *brandRepo) List(ctx context.Context) ([]models.Brand, error) {
	var rows []models.Brand
	err := r.db.WithContext(ctx).Order("title ASC").Find(&rows).Error
	return rows, err
}

type ProductModelRepo interface {
	Create(ctx context.Context, m *models.ProductModel) error
	GetByID(ctx context.Context, id uint) (*models.ProductModel, error)
}

type productModelRepo struct{ db *gorm.DB }

func NewProductModelRepo(db *gorm.DB) ProductModelRepo { return &productModelRepo{db: db} }

func (r *productModelRepo) Create(ctx context.Context, m *models.ProductModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *productModelRepo) GetByID(ctx context.Context, id uint) (*models.ProductModel, error) {
	var m models.ProductModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

// ProductFilter narrows a category listing. Nil fields are ignored.
type ProductFilter struct {
	CategoryID uint
	Brand      *string // brand title
	Color      *string // color name
	Discount   *int
	Price      *decimal.Decimal // list price
	Limit      int
	Offset     int
}

// ProductFacets are the distinct filter values available in a category
type ProductFacets struct {
	Brands    []string          `json:"brands"`
	Colors    []string          `json:"colors"`
	Discounts []int             `json:"discounts"`
	Prices    []decimal.Decimal `json:"prices"` // effective prices, ascending
}

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	ListByCategory(ctx context.Context, f ProductFilter) ([]models.Product, int64, error)
	Related(ctx context.Context, p *models.Product) ([]models.Product, error)
	SameModel(ctx context.Context, p *models.Product) ([]models.Product, error)
	Facets(ctx context.Context, categoryID uint) (*ProductFacets, error)
	Update(ctx context.Context, p *models.Product, fields map[string]any) error
	SetImage(ctx context.Context, id uint, key string) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	return duplicate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *productRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Brand").Preload("ProductModel").
		Where("slug = ?", slug).First(&p).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *productRepo) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// List returns every product, newest first
func (r *productRepo) List(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).Preload("Brand").Order("created_at DESC, id DESC").Find(&rows).Error
	return rows, err
}

func (r *productRepo) ListByCategory(ctx context.Context, f ProductFilter) ([]models.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{}).Where("products.category_id = ?", f.CategoryID)

	if f.Brand != nil {
		q = q.Joins("JOIN brands ON brands.id = products.brand_id").Where("brands.title = ?", *f.Brand)
	}
	if f.Color != nil {
		q = q.Where("products.color_name = ?", *f.Color)
	}
	if f.Discount != nil {
		q = q.Where("products.discount = ?", *f.Discount)
	}
	if f.Price != nil {
		q = q.Where("products.price = ?", *f.Price)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var rows []models.Product
	err := q.Preload("Brand").Order("products.id DESC").Limit(f.Limit).Offset(f.Offset).Find(&rows).Error
	return rows, total, err
}

// Related returns the other products of p's category, newest first
func (r *productRepo) Related(ctx context.Context, p *models.Product) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND id <> ?", p.CategoryID, p.ID).
		Order("id DESC").Find(&rows).Error
	return rows, err
}

// SameModel returns the products sharing p's category and model, p included
func (r *productRepo) SameModel(ctx context.Context, p *models.Product) ([]models.Product, error) {
	var rows []models.Product
	q := r.db.WithContext(ctx).Where("category_id = ?", p.CategoryID)
	if p.ProductModelID == nil {
		q = q.Where("product_model_id IS NULL")
	} else {
		q = q.Where("product_model_id = ?", *p.ProductModelID)
	}
	err := q.Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *productRepo) Facets(ctx context.Context, categoryID uint) (*ProductFacets, error) {
	db := r.db.WithContext(ctx)
	facets := &ProductFacets{}

	if err := db.Model(&models.Product{}).
		Joins("JOIN brands ON brands.id = products.brand_id").
		Where("products.category_id = ?", categoryID).
		Distinct().Order("brands.title").Pluck("brands.title", &facets.Brands).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Product{}).
		Where("category_id = ? AND color_name <> ''", categoryID).
		Distinct().Order("color_name").Pluck("color_name", &facets.Colors).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Product{}).
		Where("category_id = ? AND discount IS NOT NULL", categoryID).
		Distinct().Order("discount").Pluck("discount", &facets.Discounts).Error; err != nil {
		return nil, err
	}

	var priced []models.Product
	if err := db.Select("price", "discount").
		Where("category_id = ?", categoryID).
		Find(&priced).Error; err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(priced))
	for i := range priced {
		price := priced[i].EffectivePrice()
		if key := price.StringFixed(2); !seen[key] {
			seen[key] = true
			facets.Prices = append(facets.Prices, price)
		}
	}
	sort.Slice(facets.Prices, func(i, j int) bool { return facets.Prices[i].LessThan(facets.Prices[j]) })
	return facets, nil
}

func (r *productRepo) Update(ctx context.Context, p *models.Product, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(p).Updates(fields).Error
}

func (r *productRepo) SetImage(ctx context.Context, id uint, key string) error {
	return r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Update("image_s3_key", key).Error
}

type SpecificationRepo interface {
	Create(ctx context.Context, s *models.Specification) error
	ListByProduct(ctx context.Context, productID uint) ([]models.Specification, error)
}

type specificationRepo struct{ db *gorm.DB }

func NewSpecificationRepo(db *gorm.DB) SpecificationRepo { return &specificationRepo{db: db} }

func (r *specificationRepo) Create(ctx context.Context, s *models.Specification) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *specificationRepo) ListByProduct(ctx context.Context, productID uint) ([]models.Specification, error) {
	var rows []models.Specification
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id ASC").Find(&rows).Error
	return rows, err
}
