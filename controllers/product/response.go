package productcontroller

import (
	fileControllers "github.com/gitmibrahim/soul/controllers/files"
	"github.com/gitmibrahim/soul/models"
)

// ProductResponse is a product with its image references resolved to URLs
// the storefront can load directly.
type ProductResponse struct {
	models.Product
	ImageURLs []string `json:"image_urls"`
}

func NewProductResponse(p models.Product) ProductResponse {
	refs := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		refs = append(refs, img.Ref)
	}
	return ProductResponse{Product: p, ImageURLs: fileControllers.ResolveURLs(refs)}
}

func NewProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}
