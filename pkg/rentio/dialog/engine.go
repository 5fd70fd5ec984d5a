package dialog

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/rentio/rentio/pkg/rentio/catalog"
	"github.com/rentio/rentio/pkg/rentio/internalerr"
	"github.com/rentio/rentio/pkg/rentio/match"
	"github.com/rentio/rentio/pkg/rentio/nlp"
)

// Fixed response templates.
const (
	Greeting = "Hi there! Welcome to Rentio!\n" +
		"Which category, brand, or product are you looking for?\n" +
		"(You can type 'reset' at any time to start over and 'exit' if you are done.)"
	WelcomeBack     = "Welcome back!\nWhat other category, brand, or product are you looking for?"
	DefaultResponse = "Sorry but I am not sure which category, brand, or product you are looking for."
	Goodbye         = "Bye! Hope you visit us again soon!"
)

// Outcome tells the shell whether the session continues.
type Outcome int

const (
	Continue Outcome = iota
	Exit
)

// Engine is the turn-by-turn disambiguation state machine. It owns no
// state itself: everything mutable lives on the Session.
type Engine struct {
	index  *catalog.Index
	tagger nlp.Service
	log    *zap.Logger
}

// NewEngine creates an engine over the given index.
func NewEngine(index *catalog.Index, tagger nlp.Service, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{index: index, tagger: tagger, log: log}
}

// handler is one guarded rule of the disambiguation chain. Guards are
// evaluated in declaration order; the first that fires produces the
// turn's response.
type handler struct {
	name  string
	guard func(*Session) bool
	run   func(*Engine, *Session) (string, error)
}

var handlers = []handler{
	{
		name:  "product-keywords",
		guard: func(s *Session) bool { return len(s.Found.ProductKeywords) > 0 },
		run:   (*Engine).suggestFromKeywords,
	},
	{
		name:  "brand-without-category",
		guard: func(s *Session) bool { return len(s.Found.Brands) > 0 && len(s.Found.Categories) == 0 },
		run:   (*Engine).suggestCategories,
	},
	{
		name:  "category-without-brand",
		guard: func(s *Session) bool { return len(s.Found.Categories) > 0 && len(s.Found.Brands) == 0 },
		run:   (*Engine).suggestBrands,
	},
	{
		name:  "category-keywords-with-brand",
		guard: func(s *Session) bool { return len(s.Found.CategoryKeywords) > 0 && len(s.Found.Brands) > 0 },
		run:   (*Engine).suggestFromCategoriesAndBrands,
	},
}

// Respond consumes one turn: it merges the matcher's found sets into
// the session under the carry-over rule and walks the priority chain.
func (e *Engine) Respond(sess *Session, utterance string, found match.FoundSets) (string, Outcome, error) {
	sess.Utterance = utterance
	sess.Found = match.Merge(sess.Found, found)

	if e.index.IsProduct(utterance) {
		sess.Found.Products = map[string]struct{}{utterance: {}}
		resp, err := e.offerPrices(sess)
		return resp, Continue, err
	}
	if utterance == "exit" {
		return Goodbye, Exit, nil
	}
	if utterance == "reset" {
		sess.Reset()
		return WelcomeBack, Continue, nil
	}

	if err := e.expandCategories(sess); err != nil {
		return "", Continue, err
	}

	if len(sess.Found.Products) > 0 {
		resp, err := e.offerPrices(sess)
		return resp, Continue, err
	}
	if len(sess.PossibleProducts) > 0 {
		resp, err := e.offerPricesFromPossible(sess)
		return resp, Continue, err
	}

	for _, h := range handlers {
		if !h.guard(sess) {
			continue
		}
		e.log.Debug("handler fired",
			zap.String("session", sess.ID),
			zap.String("handler", h.name),
			zap.Int("brands", len(sess.Found.Brands)),
			zap.Int("categories", len(sess.Found.Categories)))
		resp, err := h.run(e, sess)
		return resp, Continue, err
	}

	return DefaultResponse, Continue, nil
}

// expandCategories resolves every found category keyword through the
// index, accumulating into the session's category set. A keyword with
// no index entry is an invariant violation: matcher and indexer share
// one vocabulary.
func (e *Engine) expandCategories(sess *Session) error {
	for kw := range sess.Found.CategoryKeywords {
		category, ok := e.index.CategoryForKeyword(kw)
		if !ok {
			return fmt.Errorf("category keyword %q: %w", kw, internalerr.ErrUnresolvedKeyword)
		}
		if sess.Found.Categories == nil {
			sess.Found.Categories = make(map[string]struct{})
		}
		sess.Found.Categories[category] = struct{}{}
	}
	return nil
}

// offerPrices quotes one price line per found product.
func (e *Engine) offerPrices(sess *Session) (string, error) {
	var b strings.Builder
	for _, product := range sortedSet(sess.Found.Products) {
		price, ok := e.index.Price(product)
		if !ok {
			return "", fmt.Errorf("product %q: %w", product, internalerr.ErrUnresolvedKeyword)
		}
		fmt.Fprintf(&b, "%s will cost %s of rent per month.\n", product, price)
	}
	return b.String(), nil
}

// offerPricesFromPossible narrows a previously offered candidate list
// by intersecting the current utterance's tokens with each candidate
// name's tokens. With no intersection at all, the whole list is
// treated as confirmed: the user is assumed to still mean it.
func (e *Engine) offerPricesFromPossible(sess *Session) (string, error) {
	tokens, err := e.tagger.Tokenize(sess.Utterance)
	if err != nil {
		return "", fmt.Errorf("tokenize utterance: %w", err)
	}
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = struct{}{}
	}

	narrowed := make(map[string]struct{})
	for name := range sess.PossibleProducts {
		for _, tok := range e.index.TokensOf(name) {
			if _, ok := tokenSet[tok]; ok {
				narrowed[name] = struct{}{}
				break
			}
		}
	}

	if len(narrowed) > 0 {
		sess.Found.Products = narrowed
	} else {
		confirmed := make(map[string]struct{}, len(sess.PossibleProducts))
		for name := range sess.PossibleProducts {
			confirmed[name] = struct{}{}
		}
		sess.Found.Products = confirmed
	}
	return e.offerPrices(sess)
}

// suggestFromKeywords resolves found product keywords to candidate
// products and walks them down to an answer, a product choice, or a
// brand choice.
func (e *Engine) suggestFromKeywords(sess *Session) (string, error) {
	possible := make(map[string]struct{})
	for kw := range sess.Found.ProductKeywords {
		products, ok := e.index.ProductsForKeyword(kw)
		if !ok {
			return "", fmt.Errorf("product keyword %q: %w", kw, internalerr.ErrUnresolvedKeyword)
		}
		for _, p := range products {
			possible[p] = struct{}{}
		}
	}

	possibleBrands := make(map[string]struct{})
	for product := range possible {
		brand, ok := e.index.BrandOf(product)
		if !ok {
			return "", fmt.Errorf("product %q: %w", product, internalerr.ErrUnresolvedKeyword)
		}
		possibleBrands[brand] = struct{}{}
	}

	stated := make(map[string]struct{})
	for brand := range possibleBrands {
		if _, ok := sess.Found.Brands[brand]; ok {
			stated[brand] = struct{}{}
		}
	}

	switch {
	case len(possible) == 1:
		return e.answerSingle(sess, sortedSet(possible)[0])

	case len(possibleBrands) == 1:
		return e.listProducts(sess, sortedSet(possible)), nil

	case len(sess.Found.Brands) > 0 && len(stated) == 1:
		brand := sortedSet(stated)[0]
		var filtered []string
		for _, product := range sortedSet(possible) {
			if owner, _ := e.index.BrandOf(product); owner == brand {
				filtered = append(filtered, product)
			}
		}
		if len(filtered) == 1 {
			return e.answerSingle(sess, filtered[0])
		}
		return e.listProducts(sess, filtered), nil

	case len(sess.Found.Brands) > 0 && len(stated) > 1:
		// Several stated brands remain in play: ask among those, in
		// lexical order, rather than re-listing every candidate brand.
		return brandChoice(sortedSet(stated)), nil

	default:
		return brandChoice(sortedSet(possibleBrands)), nil
	}
}

// suggestCategories handles a brand with no category yet. A brand
// spanning exactly one category auto-descends into product
// suggestion instead of asking.
func (e *Engine) suggestCategories(sess *Session) (string, error) {
	brands := sortedSet(sess.Found.Brands)
	if len(brands) > 1 {
		var b strings.Builder
		b.WriteString("Which one of the brands you mentioned are you interested in?")
		for _, brand := range brands {
			b.WriteString("\n" + brand)
		}
		return b.String(), nil
	}

	brand := brands[0]
	categories := e.index.CategoriesOfBrand(brand)
	if len(categories) == 1 {
		if sess.Found.Categories == nil {
			sess.Found.Categories = make(map[string]struct{})
		}
		sess.Found.Categories[categories[0]] = struct{}{}
		return e.suggestFromCategoriesAndBrands(sess)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I understand you are interested in the brand %s. "+
		"Which of the following categories are you interested in?", brand)
	for _, category := range categories {
		b.WriteString("\n" + category)
	}
	return b.String(), nil
}

// suggestBrands handles a category with no brand yet, auto-descending
// through a single brand with a single product straight to a quote.
func (e *Engine) suggestBrands(sess *Session) (string, error) {
	categories := sortedSet(sess.Found.Categories)
	if len(categories) == 1 {
		category := categories[0]
		brands := e.index.BrandsOfCategory(category)
		preamble := fmt.Sprintf("I understand that you are interested in the category %s\n", category)

		if len(brands) == 1 {
			products := e.index.ProductsOfBrand(brands[0])
			if len(products) == 1 {
				if sess.Found.Products == nil {
					sess.Found.Products = make(map[string]struct{})
				}
				sess.Found.Products[products[0]] = struct{}{}
				prices, err := e.offerPrices(sess)
				if err != nil {
					return "", err
				}
				return preamble + prices, nil
			}
			return e.listProducts(sess, products), nil
		}

		var b strings.Builder
		b.WriteString(preamble)
		b.WriteString("We offer the following brands:")
		for _, brand := range brands {
			b.WriteString("\n" + brand)
		}
		return b.String(), nil
	}

	var b strings.Builder
	for _, category := range categories {
		fmt.Fprintf(&b, "\nFor category %s we offer the following brand(s):", category)
		for _, brand := range e.index.BrandsOfCategory(category) {
			b.WriteString("\n" + brand)
		}
	}
	return b.String(), nil
}

// suggestFromCategoriesAndBrands resolves a product when both brand
// and category signals are on the table.
func (e *Engine) suggestFromCategoriesAndBrands(sess *Session) (string, error) {
	brands := sortedSet(sess.Found.Brands)
	if len(brands) != 1 {
		return brandChoice(brands), nil
	}

	brand := brands[0]
	if len(e.index.CategoriesOfBrand(brand)) == 1 {
		return e.suggestWithinBrand(sess, brand, e.index.ProductsOfBrand(brand))
	}
	return e.suggestAcrossCategories(sess, brand)
}

// suggestWithinBrand answers directly when the brand carries exactly
// one product, otherwise offers the given products as a choice.
func (e *Engine) suggestWithinBrand(sess *Session, brand string, products []string) (string, error) {
	owned := e.index.ProductsOfBrand(brand)
	if len(owned) == 1 {
		return e.answerSingle(sess, owned[0])
	}
	return e.listProducts(sess, products), nil
}

// suggestAcrossCategories narrows a multi-category brand through the
// categories the user has mentioned.
func (e *Engine) suggestAcrossCategories(sess *Session, brand string) (string, error) {
	possible := e.index.CategoriesOfBrand(brand)

	var intersection []string
	for _, category := range possible {
		if _, ok := sess.Found.Categories[category]; ok {
			intersection = append(intersection, category)
		}
	}

	switch len(intersection) {
	case 1:
		return e.suggestWithinBrand(sess, brand, e.index.ProductsOf(intersection[0], brand))
	case 0:
		return categoryChoice(possible), nil
	default:
		return categoryChoice(intersection), nil
	}
}

// answerSingle records one resolved product and quotes it.
func (e *Engine) answerSingle(sess *Session, product string) (string, error) {
	if sess.Found.Products == nil {
		sess.Found.Products = make(map[string]struct{})
	}
	sess.Found.Products[product] = struct{}{}
	prices, err := e.offerPrices(sess)
	if err != nil {
		return "", err
	}
	return "We offer the following product:\n" + prices, nil
}

// listProducts offers the given products as a choice and registers
// them for narrowing on the next turn.
func (e *Engine) listProducts(sess *Session, products []string) string {
	var b strings.Builder
	b.WriteString("Which of the following products are you interested in?")
	for _, product := range products {
		b.WriteString("\n" + product)
		sess.PossibleProducts[product] = struct{}{}
	}
	return b.String()
}

func brandChoice(brands []string) string {
	var b strings.Builder
	b.WriteString("Which of the following brands are you interested in?")
	for _, brand := range brands {
		b.WriteString("\n" + brand)
	}
	return b.String()
}

func categoryChoice(categories []string) string {
	var b strings.Builder
	b.WriteString("Which of the following categories are you interested in?")
	for _, category := range categories {
		b.WriteString("\n" + category)
	}
	return b.String()
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
