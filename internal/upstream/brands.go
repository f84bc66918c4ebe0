package upstream

import (
	"context"
	"net/url"
)

type Brand struct {
	Name string `json:"name"`
}

type BrandClient struct {
	*Client
}

func NewBrandClient(c *Client) *BrandClient {
	return &BrandClient{Client: c}
}

func (b *BrandClient) ListBrands(ctx context.Context) ([]Brand, error) {
	var brands []Brand
	if err := b.get(ctx, "/car-brands/carBrand", nil, "", &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (b *BrandClient) ListModels(ctx context.Context, brand string) ([]string, error) {
	var models []string
	if err := b.get(ctx, "/car-brands/"+url.PathEscape(brand)+"/models", nil, "", &models); err != nil {
		return nil, err
	}
	return models, nil
}
