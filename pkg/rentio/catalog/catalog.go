package catalog

import "sort"

// Row is one raw catalog row as delivered by a source reader.
// All textual fields are lowercase-normalized before indexing.
type Row struct {
	ID       string
	Product  string
	Brand    string
	Category string
	Price    string
}

// Index is the read-only keyword index derived from catalog rows.
// Built once at startup, never mutated afterwards, safe for
// concurrent readers.
type Index struct {
	categories map[string]struct{}
	brands     map[string]struct{}

	// products preserves file insertion order, one entry per row.
	products []string

	priceByProduct    map[string]string
	brandByProduct    map[string]string
	productsByBrand   map[string][]string
	categoriesByBrand map[string]map[string]struct{}

	// category → brand → product → price
	byCategoryBrand map[string]map[string]map[string]string

	keywordToCategory map[string]string
	keywordToProducts map[string]map[string]struct{}

	// productTokens caches the tokenized form of each product name,
	// used for narrowing a previously offered candidate list.
	productTokens map[string][]string
}

// Products returns product names in insertion order.
func (ix *Index) Products() []string {
	out := make([]string, len(ix.products))
	copy(out, ix.products)
	return out
}

// IsProduct reports whether name is a known product name.
func (ix *Index) IsProduct(name string) bool {
	_, ok := ix.priceByProduct[name]
	return ok
}

// IsBrand reports whether name is a known brand.
func (ix *Index) IsBrand(name string) bool {
	_, ok := ix.brands[name]
	return ok
}

// IsCategory reports whether name is a known category.
func (ix *Index) IsCategory(name string) bool {
	_, ok := ix.categories[name]
	return ok
}

// IsCategoryKeyword reports whether tok maps to a category.
func (ix *Index) IsCategoryKeyword(tok string) bool {
	_, ok := ix.keywordToCategory[tok]
	return ok
}

// IsProductKeyword reports whether tok maps to at least one product.
func (ix *Index) IsProductKeyword(tok string) bool {
	_, ok := ix.keywordToProducts[tok]
	return ok
}

// Price returns the monthly price for a product.
func (ix *Index) Price(product string) (string, bool) {
	p, ok := ix.priceByProduct[product]
	return p, ok
}

// BrandOf returns the brand owning a product.
func (ix *Index) BrandOf(product string) (string, bool) {
	b, ok := ix.brandByProduct[product]
	return b, ok
}

// CategoryForKeyword resolves a category keyword to its category.
func (ix *Index) CategoryForKeyword(tok string) (string, bool) {
	c, ok := ix.keywordToCategory[tok]
	return c, ok
}

// ProductsForKeyword returns the products whose name contains the
// given noun keyword, in lexical order.
func (ix *Index) ProductsForKeyword(tok string) ([]string, bool) {
	set, ok := ix.keywordToProducts[tok]
	if !ok {
		return nil, false
	}
	return sortedKeys(set), true
}

// ProductsOfBrand returns a brand's products in insertion order.
func (ix *Index) ProductsOfBrand(brand string) []string {
	out := make([]string, len(ix.productsByBrand[brand]))
	copy(out, ix.productsByBrand[brand])
	return out
}

// CategoriesOfBrand returns the categories a brand spans, in lexical
// order.
func (ix *Index) CategoriesOfBrand(brand string) []string {
	return sortedKeys(ix.categoriesByBrand[brand])
}

// BrandsOfCategory returns the brands offered within a category, in
// lexical order.
func (ix *Index) BrandsOfCategory(category string) []string {
	brands := ix.byCategoryBrand[category]
	out := make([]string, 0, len(brands))
	for b := range brands {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}

// ProductsOf returns the products for a category+brand pair, in
// lexical order.
func (ix *Index) ProductsOf(category, brand string) []string {
	return sortedStringKeys(ix.byCategoryBrand[category][brand])
}

// TokensOf returns the cached token sequence of a product name.
func (ix *Index) TokensOf(product string) []string {
	return ix.productTokens[product]
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedStringKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
