package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/rlwai/shop-api/internal/model"
)

type ImageRepository interface {
	// FindByKeys returns every image record for the given keys ordered by
	// is_primary DESC, id ASC. The blob is only loaded for unresolved records.
	FindByKeys(ctx context.Context, keys []model.ImageKey) ([]model.Image, error)
	// MarkResolved stores the file path and drops the blob in one statement.
	MarkResolved(ctx context.Context, id int64, path string) error
	MarkNoImage(ctx context.Context, id int64) error
}

type imageRepo struct {
	db sqlxDB
}

func NewImageRepository(db *sqlx.DB) ImageRepository {
	return &imageRepo{db: db}
}

func (r *imageRepo) FindByKeys(ctx context.Context, keys []model.ImageKey) ([]model.Image, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	productCodes := make([]string, len(keys))
	variantCodes := make([]string, len(keys))
	for i, key := range keys {
		productCodes[i] = key.ProductCode
		variantCodes[i] = key.VariantCode
	}

	var images []model.Image
	err := r.db.SelectContext(ctx, &images, `
		SELECT
			i.id,
			i.product_code,
			i.subprod_code,
			i.image_path,
			COALESCE(i.is_primary, FALSE) AS is_primary,
			CASE
				WHEN i.image_path IS NULL OR i.image_path = '' OR i.image_path = $3
				THEN i.img_data
			END AS img_data
		FROM images i
		JOIN unnest($1::text[], $2::text[]) AS k(product_code, subprod_code)
			ON i.product_code = k.product_code
			AND COALESCE(i.subprod_code, '') = k.subprod_code
		ORDER BY is_primary DESC, i.id ASC
	`, pq.Array(productCodes), pq.Array(variantCodes), model.NoImageSentinel)
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepo) MarkResolved(ctx context.Context, id int64, path string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE images SET
			image_path = $2,
			img_data = NULL
		WHERE id = $1
	`, id, path)
	return err
}

func (r *imageRepo) MarkNoImage(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE images SET image_path = $2 WHERE id = $1
	`, id, model.NoImageSentinel)
	return err
}
