package service

import (
	"context"

	"github.com/rs/zerolog/log"

	apperrors "github.com/rlwai/shop-api/internal/errors"
	"github.com/rlwai/shop-api/internal/model"
	"github.com/rlwai/shop-api/internal/repository"
	"github.com/rlwai/shop-api/internal/storage"
)

// ImageResolver maps image keys to on-disk paths, writing stored blobs out to
// the file store the first time they are requested.
type ImageResolver struct {
	imageRepo repository.ImageRepository
	files     storage.FileStore
}

func NewImageResolver(imageRepo repository.ImageRepository, files storage.FileStore) *ImageResolver {
	return &ImageResolver{
		imageRepo: imageRepo,
		files:     files,
	}
}

// Resolve returns an entry for every distinct key. An empty string means the
// key has no image. Storage failures are logged and never returned.
func (r *ImageResolver) Resolve(ctx context.Context, keys []model.ImageKey) map[model.ImageKey]string {
	result := make(map[model.ImageKey]string, len(keys))
	unique := make([]model.ImageKey, 0, len(keys))
	for _, key := range keys {
		if _, seen := result[key]; seen {
			continue
		}
		result[key] = ""
		unique = append(unique, key)
	}

	if len(unique) == 0 {
		return result
	}

	images, err := r.imageRepo.FindByKeys(ctx, unique)
	if err != nil {
		log.Error().
			Err(apperrors.ImageStorageUnavailable(err)).
			Int("keys", len(unique)).
			Msg("image lookup failed, serving without images")
		return result
	}

	// paths[i] is the usable path for images[i] once this call is done.
	paths := make([]string, len(images))
	var pending []int

	for i := range images {
		img := &images[i]

		if p := img.StoredPath(); p != "" && r.files.Exists(p) {
			paths[i] = p
			continue
		}

		if img.HasPayload() {
			pending = append(pending, i)
			continue
		}

		if img.IsMarkedNoImage() {
			continue
		}
		if err := r.imageRepo.MarkNoImage(ctx, img.ID); err != nil {
			log.Warn().Err(err).Int64("imageId", img.ID).Msg("failed to mark image as missing")
		}
	}

	for _, i := range pending {
		paths[i] = r.materialize(ctx, &images[i])
	}

	// Rows arrive primary first, so the first usable path per key wins.
	for i := range images {
		key := images[i].Key()
		if current, ok := result[key]; ok && current == "" && paths[i] != "" {
			result[key] = paths[i]
		}
	}

	return result
}

func (r *ImageResolver) materialize(ctx context.Context, img *model.Image) string {
	key := img.Key()
	name := storage.ImageFileName(key.ProductCode, key.VariantCode, img.ID, storage.DetectExtension(img.Data))

	path, err := r.files.Write(name, img.Data)
	if err != nil {
		log.Warn().Err(apperrors.ImageWriteFailure(img.ID, err)).Str("file", name).Msg("image write failed")
		return ""
	}

	if err := r.imageRepo.MarkResolved(ctx, img.ID, path); err != nil {
		log.Warn().Err(apperrors.ImageWriteFailure(img.ID, err)).Str("file", name).Msg("image path update failed")
		return ""
	}

	log.Info().
		Int64("imageId", img.ID).
		Str("productCode", key.ProductCode).
		Str("variantCode", key.VariantCode).
		Str("path", path).
		Msg("image materialized")

	return path
}
