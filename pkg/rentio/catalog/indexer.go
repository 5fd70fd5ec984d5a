package catalog

import (
	"fmt"
	"strings"

	"github.com/rentio/rentio/pkg/rentio/nlp"
)

// Noun keywords shorter than this carry too little signal to index.
const minKeywordLen = 3

// Build constructs the catalog index from raw rows. Rows are
// case-folded here so all later matching is case-insensitive by
// construction. A duplicate product name overwrites price, brand and
// category (last row wins).
func Build(rows []Row, tagger nlp.Service) (*Index, error) {
	ix := &Index{
		categories:        make(map[string]struct{}),
		brands:            make(map[string]struct{}),
		priceByProduct:    make(map[string]string),
		brandByProduct:    make(map[string]string),
		productsByBrand:   make(map[string][]string),
		categoriesByBrand: make(map[string]map[string]struct{}),
		byCategoryBrand:   make(map[string]map[string]map[string]string),
		keywordToCategory: make(map[string]string),
		keywordToProducts: make(map[string]map[string]struct{}),
		productTokens:     make(map[string][]string),
	}

	// Category iteration order decides which category a shared stem
	// resolves to, so track first appearance explicitly.
	var categoryOrder []string

	for _, row := range rows {
		product := strings.ToLower(row.Product)
		brand := strings.ToLower(row.Brand)
		category := strings.ToLower(row.Category)
		price := strings.ToLower(row.Price)

		ix.products = append(ix.products, product)
		ix.brands[brand] = struct{}{}
		if _, ok := ix.categories[category]; !ok {
			ix.categories[category] = struct{}{}
			categoryOrder = append(categoryOrder, category)
		}

		if ix.byCategoryBrand[category] == nil {
			ix.byCategoryBrand[category] = make(map[string]map[string]string)
		}
		if ix.byCategoryBrand[category][brand] == nil {
			ix.byCategoryBrand[category][brand] = make(map[string]string)
		}
		ix.byCategoryBrand[category][brand][product] = price

		ix.productsByBrand[brand] = append(ix.productsByBrand[brand], product)
		ix.priceByProduct[product] = price
		ix.brandByProduct[product] = brand

		if ix.categoriesByBrand[brand] == nil {
			ix.categoriesByBrand[brand] = make(map[string]struct{})
		}
		ix.categoriesByBrand[brand][category] = struct{}{}
	}

	buildCategoryKeywords(ix, categoryOrder, tagger)
	if err := buildProductKeywords(ix, tagger); err != nil {
		return nil, err
	}

	return ix, nil
}

// buildCategoryKeywords maps each `&`-separated fragment of a
// category label, and its stem, to that category. Literal fragments
// always win; a stem only maps if no earlier category claimed it.
func buildCategoryKeywords(ix *Index, categoryOrder []string, tagger nlp.Service) {
	for _, category := range categoryOrder {
		for _, frag := range strings.Split(category, "&") {
			word := strings.TrimSpace(frag)
			if word == "" {
				continue
			}
			ix.keywordToCategory[word] = category
			stem := tagger.Stem(word)
			if _, ok := ix.keywordToCategory[stem]; !ok {
				ix.keywordToCategory[stem] = category
			}
		}
	}
}

// buildProductKeywords tokenizes and POS-tags every product name and
// maps each noun token to the set of products containing it.
func buildProductKeywords(ix *Index, tagger nlp.Service) error {
	for _, product := range ix.products {
		if _, done := ix.productTokens[product]; done {
			continue
		}

		tagged, err := tagger.PosTag(product)
		if err != nil {
			return fmt.Errorf("tag product %q: %w", product, err)
		}

		tokens := make([]string, 0, len(tagged))
		for _, tok := range tagged {
			tokens = append(tokens, tok.Text)
			if !nlp.IsNoun(tok.Tag) || len(tok.Text) < minKeywordLen {
				continue
			}
			if ix.keywordToProducts[tok.Text] == nil {
				ix.keywordToProducts[tok.Text] = make(map[string]struct{})
			}
			ix.keywordToProducts[tok.Text][product] = struct{}{}
		}
		ix.productTokens[product] = tokens
	}
	return nil
}
