package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/digitalstore/digitalstore-api/models"
	"github.com/digitalstore/digitalstore-api/repository"
)

// ProductDetail is a product page: the product, its characteristics and its neighbours
type ProductDetail struct {
	Product        *models.Product        `json:"product"`
	Specifications []models.Specification `json:"specifications"`
	Related        []models.Product       `json:"related"`
	SameModel      []models.Product       `json:"same_model"`
}

// CategoryQuery holds the optional filters of a category listing
type CategoryQuery struct {
	Brand    *string
	Color    *string
	Discount *int
	Price    *decimal.Decimal
	Page     int
	Limit    int
}

// CategoryListing is one page of a category with the facets available across the whole category
type CategoryListing struct {
	Category   *models.Category          `json:"category"`
	Products   []models.Product          `json:"products"`
	Facets     *repository.ProductFacets `json:"facets"`
	Pagination Pagination                `json:"pagination"`
}

// Pagination describes a page of a larger result
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination normalises page and limit and computes the page count
func NewPagination(page, limit int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}
}

type CreateCategoryInput struct {
	Title string `json:"title" binding:"required"`
	Slug  string `json:"slug"`
}

type CreateProductInput struct {
	Title        string          `json:"title" binding:"required"`
	Slug         string          `json:"slug"`
	Price        decimal.Decimal `json:"price"`
	Discount     *int            `json:"discount"`
	Quantity     int             `json:"quantity"`
	ColorName    string          `json:"color_name"`
	ColorCode    string          `json:"color_code"`
	Warranty     string          `json:"warranty"`
	CategorySlug string          `json:"category" binding:"required"`
	BrandID      *uint           `json:"brand_id"`
	ModelID      *uint           `json:"model_id"`
}

// UpdateProductInput changes stock and pricing. Nil fields are left untouched;
// ClearDiscount removes the discount.
type UpdateProductInput struct {
	Price         *decimal.Decimal `json:"price"`
	Quantity      *int             `json:"quantity"`
	Discount      *int             `json:"discount"`
	ClearDiscount bool             `json:"clear_discount"`
}

type CatalogService struct {
	repo   *repository.Repository
	images ImageService
	log    *zap.Logger
}

func NewCatalogService(repo *repository.Repository, images ImageService, log *zap.Logger) *CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogService{repo: repo, images: images, log: log}
}

// ListProducts returns every product, newest first
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.repo.Products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	s.decorateProducts(ctx, rows)
	return rows, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.repo.Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	for i := range rows {
		s.decorateCategory(ctx, &rows[i])
	}
	return rows, nil
}

// GetProductDetail loads a product with its specifications, related and same-model products
func (s *CatalogService) GetProductDetail(ctx context.Context, productSlug string) (*ProductDetail, error) {
	p, err := s.productBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	detail := &ProductDetail{Product: p}
	if detail.Specifications, err = s.repo.Specifications.ListByProduct(ctx, p.ID); err != nil {
		return nil, fmt.Errorf("list specifications: %w", err)
	}
	if detail.Related, err = s.repo.Products.Related(ctx, p); err != nil {
		return nil, fmt.Errorf("list related products: %w", err)
	}
	if detail.SameModel, err = s.repo.Products.SameModel(ctx, p); err != nil {
		return nil, fmt.Errorf("list same-model products: %w", err)
	}

	s.decorateProduct(ctx, p)
	if p.Category != nil {
		s.decorateCategory(ctx, p.Category)
	}
	s.decorateProducts(ctx, detail.Related)
	s.decorateProducts(ctx, detail.SameModel)
	return detail, nil
}

// ListCategoryProducts returns a filtered page of a category and the category-wide facets
func (s *CatalogService) ListCategoryProducts(ctx context.Context, categorySlug string, q CategoryQuery) (*CategoryListing, error) {
	category, err := s.categoryBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}

	pg := NewPagination(q.Page, q.Limit, 0)
	rows, total, err := s.repo.Products.ListByCategory(ctx, repository.ProductFilter{
		CategoryID: category.ID,
		Brand:      q.Brand,
		Color:      q.Color,
		Discount:   q.Discount,
		Price:      q.Price,
		Limit:      pg.Limit,
		Offset:     (pg.Page - 1) * pg.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list category products: %w", err)
	}

	facets, err := s.repo.Products.Facets(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("load facets: %w", err)
	}

	s.decorateCategory(ctx, category)
	s.decorateProducts(ctx, rows)
	return &CategoryListing{
		Category:   category,
		Products:   rows,
		Facets:     facets,
		Pagination: NewPagination(pg.Page, pg.Limit, total),
	}, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	slugValue, err := slugFor(in.Title, in.Slug)
	if err != nil {
		return nil, err
	}

	c := &models.Category{Title: strings.TrimSpace(in.Title), Slug: slugValue}
	if err := s.repo.Categories.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("category created", zap.Uint("category_id", c.ID), zap.String("slug", c.Slug))
	return c, nil
}

func (s *CatalogService) CreateBrand(ctx context.Context, title string) (*models.Brand, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	b := &models.Brand{Title: title}
	if err := s.repo.Brands.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}
	return b, nil
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return s.repo.Brands.List(ctx)
}

func (s *CatalogService) CreateProductModel(ctx context.Context, title string) (*models.ProductModel, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	m := &models.ProductModel{Title: title}
	if err := s.repo.ProductModels.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create product model: %w", err)
	}
	return m, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	slugValue, err := slugFor(in.Title, in.Slug)
	if err != nil {
		return nil, err
	}
	if err := validatePricing(&in.Price, &in.Quantity, in.Discount); err != nil {
		return nil, err
	}

	category, err := s.categoryBySlug(ctx, in.CategorySlug)
	if err != nil {
		return nil, err
	}
	if in.BrandID != nil {
		if _, err := s.repo.Brands.GetByID(ctx, *in.BrandID); err != nil {
			return nil, notFoundAs(err, ErrBrandNotFound)
		}
	}
	if in.ModelID != nil {
		if _, err := s.repo.ProductModels.GetByID(ctx, *in.ModelID); err != nil {
			return nil, notFoundAs(err, ErrModelNotFound)
		}
	}

	p := &models.Product{
		Title:          strings.TrimSpace(in.Title),
		Slug:           slugValue,
		Price:          in.Price,
		Discount:       in.Discount,
		Quantity:       in.Quantity,
		ColorName:      in.ColorName,
		ColorCode:      in.ColorCode,
		Warranty:       in.Warranty,
		CategoryID:     category.ID,
		BrandID:        in.BrandID,
		ProductModelID: in.ModelID,
	}
	if err := s.repo.Products.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("product created", zap.Uint("product_id", p.ID), zap.String("slug", p.Slug))
	return s.productBySlug(ctx, p.Slug)
}

// UpdateProduct changes the price, stock or discount of a product
func (s *CatalogService) UpdateProduct(ctx context.Context, productSlug string, in UpdateProductInput) (*models.Product, error) {
	if err := validatePricing(in.Price, in.Quantity, in.Discount); err != nil {
		return nil, err
	}
	p, err := s.productBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Quantity != nil {
		fields["quantity"] = *in.Quantity
	}
	switch {
	case in.ClearDiscount:
		fields["discount"] = nil
	case in.Discount != nil:
		fields["discount"] = *in.Discount
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if err := s.repo.Products.Update(ctx, p, fields); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.log.Info("product updated", zap.String("slug", p.Slug), zap.Any("fields", fields))

	updated, err := s.productBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	s.decorateProduct(ctx, updated)
	return updated, nil
}

func (s *CatalogService) AddSpecification(ctx context.Context, productSlug, title, value string) (*models.Specification, error) {
	title, value = strings.TrimSpace(title), strings.TrimSpace(value)
	if title == "" || value == "" {
		return nil, fmt.Errorf("%w: title and value are required", ErrInvalidInput)
	}
	p, err := s.productBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	spec := &models.Specification{ProductID: p.ID, Title: title, Value: value}
	if err := s.repo.Specifications.Create(ctx, spec); err != nil {
		return nil, fmt.Errorf("create specification: %w", err)
	}
	return spec, nil
}

// SetProductImage uploads a new product image and replaces the previous one
func (s *CatalogService) SetProductImage(ctx context.Context, productSlug string, fh *multipart.FileHeader) (*models.Product, error) {
	p, err := s.productBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	key, err := s.images.UploadImage(ctx, fh, ProductImagePrefix)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Products.SetImage(ctx, p.ID, key); err != nil {
		_ = s.images.DeleteImage(ctx, key)
		return nil, fmt.Errorf("save product image: %w", err)
	}
	s.deleteQuietly(ctx, p.ImageS3Key)

	p.ImageS3Key = &key
	s.decorateProduct(ctx, p)
	return p, nil
}

// SetCategoryIcon uploads a new category icon and replaces the previous one
func (s *CatalogService) SetCategoryIcon(ctx context.Context, categorySlug string, fh *multipart.FileHeader) (*models.Category, error) {
	c, err := s.categoryBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}

	key, err := s.images.UploadImage(ctx, fh, CategoryIconPrefix)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Categories.SetIcon(ctx, c.ID, key); err != nil {
		_ = s.images.DeleteImage(ctx, key)
		return nil, fmt.Errorf("save category icon: %w", err)
	}
	s.deleteQuietly(ctx, c.IconS3Key)

	c.IconS3Key = &key
	s.decorateCategory(ctx, c)
	return c, nil
}

func (s *CatalogService) ListRegions(ctx context.Context) ([]models.Region, error) {
	return s.repo.Regions.ListRegions(ctx)
}

func (s *CatalogService) ListCities(ctx context.Context, regionID uint) ([]models.City, error) {
	if _, err := s.repo.Regions.GetRegion(ctx, regionID); err != nil {
		return nil, notFoundAs(err, ErrRegionNotFound)
	}
	return s.repo.Regions.ListCities(ctx, regionID)
}

func (s *CatalogService) CreateRegion(ctx context.Context, name string) (*models.Region, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	r := &models.Region{Name: name}
	if err := s.repo.Regions.CreateRegion(ctx, r); err != nil {
		return nil, fmt.Errorf("create region: %w", err)
	}
	return r, nil
}

func (s *CatalogService) CreateCity(ctx context.Context, regionID uint, name string) (*models.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, err := s.repo.Regions.GetRegion(ctx, regionID); err != nil {
		return nil, notFoundAs(err, ErrRegionNotFound)
	}
	c := &models.City{Name: name, RegionID: regionID}
	if err := s.repo.Regions.CreateCity(ctx, c); err != nil {
		return nil, fmt.Errorf("create city: %w", err)
	}
	return c, nil
}

func (s *CatalogService) productBySlug(ctx context.Context, productSlug string) (*models.Product, error) {
	p, err := s.repo.Products.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, notFoundAs(err, ErrProductNotFound)
	}
	return p, nil
}

func (s *CatalogService) categoryBySlug(ctx context.Context, categorySlug string) (*models.Category, error) {
	c, err := s.repo.Categories.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, notFoundAs(err, ErrCategoryNotFound)
	}
	return c, nil
}

func (s *CatalogService) decorateProducts(ctx context.Context, rows []models.Product) {
	for i := range rows {
		s.decorateProduct(ctx, &rows[i])
	}
}

func (s *CatalogService) decorateProduct(ctx context.Context, p *models.Product) {
	p.ImageURL = s.imageURL(ctx, p.ImageS3Key)
}

func (s *CatalogService) decorateCategory(ctx context.Context, c *models.Category) {
	c.IconURL = s.imageURL(ctx, c.IconS3Key)
}

// imageURL resolves a storage key. Failures are logged and leave the URL empty.
func (s *CatalogService) imageURL(ctx context.Context, key *string) *string {
	if key == nil || *key == "" || s.images == nil {
		return nil
	}
	url, err := s.images.GetImageURL(ctx, *key)
	if err != nil {
		s.log.Warn("failed to resolve image url", zap.String("key", *key), zap.Error(err))
		return nil
	}
	return &url
}

func (s *CatalogService) deleteQuietly(ctx context.Context, key *string) {
	if key == nil || *key == "" {
		return
	}
	if err := s.images.DeleteImage(ctx, *key); err != nil {
		s.log.Warn("failed to delete replaced image", zap.String("key", *key), zap.Error(err))
	}
}

// slugFor returns explicit when set, otherwise a slug derived from title
func slugFor(title, explicit string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	candidate := explicit
	if strings.TrimSpace(candidate) == "" {
		candidate = title
	}
	out := slug.Make(candidate)
	if out == "" {
		return "", fmt.Errorf("%w: cannot derive a slug from %q", ErrInvalidInput, candidate)
	}
	return out, nil
}

func validatePricing(price *decimal.Decimal, quantity *int, discount *int) error {
	if price != nil && price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if quantity != nil && *quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	if discount != nil && (*discount < 0 || *discount > 100) {
		return fmt.Errorf("%w: discount must be between 0 and 100", ErrInvalidInput)
	}
	return nil
}

// notFoundAs swaps repository.ErrNotFound for a domain sentinel
func notFoundAs(err, target error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return target
	}
	return err
}
