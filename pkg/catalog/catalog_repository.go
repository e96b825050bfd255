package catalog

import (
	"context"

	"gorm.io/gorm"

	"foodies-backend/entities"
)

type (
	// CatalogRepository reads the static reference data. Categories, areas,
	// ingredients and testimonials have no update path; rows come from the
	// seed import.
	CatalogRepository interface {
		ListCategories(ctx context.Context) ([]entities.Category, error)
		ListAreas(ctx context.Context) ([]entities.Area, error)
		ListIngredients(ctx context.Context) ([]entities.Ingredient, error)
		ListTestimonials(ctx context.Context) ([]entities.Testimonial, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *catalogRepository) ListAreas(ctx context.Context) ([]entities.Area, error) {
	var areas []entities.Area
	if err := r.db.WithContext(ctx).Order("name asc").Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

func (r *catalogRepository) ListIngredients(ctx context.Context) ([]entities.Ingredient, error) {
	var ingredients []entities.Ingredient
	if err := r.db.WithContext(ctx).Order("name asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *catalogRepository) ListTestimonials(ctx context.Context) ([]entities.Testimonial, error) {
	var testimonials []entities.Testimonial
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at desc").
		Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}
