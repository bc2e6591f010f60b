package upload

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, img *Image) error
	List(ctx context.Context) ([]Image, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, img *Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

// List returns every image, most recent first.
func (r *repository) List(ctx context.Context) ([]Image, error) {
	var images []Image
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&images).Error
	return images, err
}

// Delete removes the image with the given id. Deleting an id that does not
// exist is not an error.
func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Image{}, id).Error
}
