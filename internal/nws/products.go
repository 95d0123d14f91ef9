package nws

import (
	"context"

	"github.com/couchcryptid/nws-client/internal/domain"
)

// GetProductTypes returns every text product type.
func (c *Client) GetProductTypes(ctx context.Context) ([]domain.ProductType, error) {
	return c.productTypes(ctx, "product_types", "/products/types")
}

// GetProductTypesByLocation returns the product types issued for a location.
func (c *Client) GetProductTypesByLocation(ctx context.Context, locationID string) ([]domain.ProductType, error) {
	return c.productTypes(ctx, "product_types_by_location", segments("products", "locations", locationID, "types"))
}

func (c *Client) productTypes(ctx context.Context, endpoint, path string) ([]domain.ProductType, error) {
	resp, err := c.get(ctx, endpoint, path)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeProductTypes(resp.Body, resp.RetrievedAt), nil
}

// GetProductLocations returns every product issuing location.
func (c *Client) GetProductLocations(ctx context.Context) ([]domain.ProductLocation, error) {
	return c.productLocations(ctx, "product_locations", "/products/locations")
}

// GetProductLocationsByType returns the locations issuing a product type.
func (c *Client) GetProductLocationsByType(ctx context.Context, typeID string) ([]domain.ProductLocation, error) {
	return c.productLocations(ctx, "product_locations_by_type", segments("products", "types", typeID, "locations"))
}

func (c *Client) productLocations(ctx context.Context, endpoint, path string) ([]domain.ProductLocation, error) {
	resp, err := c.get(ctx, endpoint, path)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeProductLocations(resp.Body, resp.RetrievedAt), nil
}

// GetProducts returns recently issued products.
func (c *Client) GetProducts(ctx context.Context) ([]domain.Product, error) {
	return c.products(ctx, "products", "/products")
}

// GetProductsByType returns recently issued products of one type.
func (c *Client) GetProductsByType(ctx context.Context, typeID string) ([]domain.Product, error) {
	return c.products(ctx, "products_by_type", segments("products", "types", typeID))
}

// GetProductsByTypeAndLocation returns products of one type from one location.
func (c *Client) GetProductsByTypeAndLocation(ctx context.Context, typeID, locationID string) ([]domain.Product, error) {
	return c.products(ctx, "products_by_type_and_location", segments("products", "types", typeID, "locations", locationID))
}

func (c *Client) products(ctx context.Context, endpoint, path string) ([]domain.Product, error) {
	resp, err := c.get(ctx, endpoint, path)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeProducts(resp.Body, resp.RetrievedAt), nil
}

// GetProduct returns one product including its text.
func (c *Client) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	resp, err := c.get(ctx, "product", segments("products", productID))
	if err != nil {
		return domain.Product{}, err
	}
	return domain.NormalizeProduct(resp.Body, resp.RetrievedAt), nil
}
