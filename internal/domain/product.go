package domain

import "time"

// ProductType is a text product code such as AFD or RR2.
type ProductType struct {
	RetrievedAt time.Time `json:"retrieved_at"`
	ProductCode *string   `json:"product_code"`
	ProductName *string   `json:"product_name"`
}

// NormalizeProductTypes reads a product type "@graph".
func NormalizeProductTypes(body Object, retrievedAt time.Time) []ProductType {
	nodes := body.Objects("@graph")
	types := make([]ProductType, 0, len(nodes))
	for _, n := range nodes {
		types = append(types, ProductType{
			RetrievedAt: retrievedAt,
			ProductCode: n.String("productCode"),
			ProductName: n.String("productName"),
		})
	}
	return types
}

// ProductLocation is an issuing location for text products.
type ProductLocation struct {
	RetrievedAt  time.Time `json:"retrieved_at"`
	LocationCode string    `json:"location_code"`
	LocationName *string   `json:"location_name"`
}

// NormalizeProductLocations reads the "locations" mapping of code to name,
// ordered by code.
func NormalizeProductLocations(body Object, retrievedAt time.Time) []ProductLocation {
	locs := body.Object("locations")
	out := make([]ProductLocation, 0, len(locs))
	for _, code := range locs.Keys() {
		out = append(out, ProductLocation{
			RetrievedAt:  retrievedAt,
			LocationCode: code,
			LocationName: locs.String(code),
		})
	}
	return out
}

// Product is an issued text product. ProductText is only populated when
// fetched individually.
type Product struct {
	RetrievedAt     time.Time  `json:"retrieved_at"`
	ProductID       *string    `json:"product_id"`
	URL             *string    `json:"url"`
	WMOCollectiveID *string    `json:"wmo_collective_id"`
	IssuingOffice   *string    `json:"issuing_office"`
	IssuedAt        *time.Time `json:"issued_at"`
	ProductCode     *string    `json:"product_code"`
	ProductName     *string    `json:"product_name"`
	ProductText     *string    `json:"product_text"`
}

// NormalizeProduct reads a single product object.
func NormalizeProduct(p Object, retrievedAt time.Time) Product {
	return Product{
		RetrievedAt:     retrievedAt,
		ProductID:       p.String("id"),
		URL:             p.String("@id"),
		WMOCollectiveID: p.String("wmoCollectiveId"),
		IssuingOffice:   p.String("issuingOffice"),
		IssuedAt:        p.Time("issuanceTime"),
		ProductCode:     p.String("productCode"),
		ProductName:     p.String("productName"),
		ProductText:     p.String("productText"),
	}
}

// NormalizeProducts returns one Product per "@graph" entry.
func NormalizeProducts(body Object, retrievedAt time.Time) []Product {
	nodes := body.Objects("@graph")
	products := make([]Product, 0, len(nodes))
	for _, n := range nodes {
		products = append(products, NormalizeProduct(n, retrievedAt))
	}
	return products
}
