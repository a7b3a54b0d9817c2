package model

// NoImageSentinel marks an image record that was checked and has nothing to show.
const NoImageSentinel = "__NO_IMAGE__"

// ImageKey identifies the images of a product or of one of its variants.
// An empty VariantCode addresses the base product.
type ImageKey struct {
	ProductCode string
	VariantCode string
}

func NewImageKey(productCode string, variantCode *string) ImageKey {
	key := ImageKey{ProductCode: productCode}
	if variantCode != nil {
		key.VariantCode = *variantCode
	}
	return key
}

func (k ImageKey) HasVariant() bool {
	return k.VariantCode != ""
}

type Image struct {
	ID          int64   `db:"id" json:"id"`
	ProductCode string  `db:"product_code" json:"productCode"`
	VariantCode *string `db:"subprod_code" json:"variantCode,omitempty"`
	Data        []byte  `db:"img_data" json:"-"`
	Path        *string `db:"image_path" json:"path,omitempty"`
	IsPrimary   bool    `db:"is_primary" json:"isPrimary"`
}

func (i *Image) Key() ImageKey {
	return NewImageKey(i.ProductCode, i.VariantCode)
}

func (i *Image) HasPayload() bool {
	return len(i.Data) > 0
}

// StoredPath returns the materialized file path, or "" while unresolved or
// marked with the sentinel.
func (i *Image) StoredPath() string {
	if i.Path == nil || *i.Path == NoImageSentinel {
		return ""
	}
	return *i.Path
}

func (i *Image) IsMarkedNoImage() bool {
	return i.Path != nil && *i.Path == NoImageSentinel
}
