package catalog

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shopzone/storefront/internal/domain"
)

// ErrLoaderInvalidInput indicates the loader dependencies were incomplete.
var ErrLoaderInvalidInput = errors.New("catalog loader: invalid input")

const (
	defaultConversionRate = 83.5
	markupFactor          = 1.2
	flatDiscountPercent   = 20
	outOfStockChance      = 0.1
	reviewCountFloor      = 100
	reviewCountSpread     = 1000
)

type fetcher interface {
	FetchProducts(ctx context.Context) ([]rawProduct, error)
	FetchCategories(ctx context.Context) ([]string, error)
}

// LoaderDeps wires the collaborators required by the catalog loader.
type LoaderDeps struct {
	Client         fetcher
	Store          *Store
	ConversionRate float64
	Rand           *rand.Rand
	Logger         *zap.Logger
}

// Loader performs the one-shot catalog fetch and normalisation at startup.
// Stock flags and review counts are drawn once per load and stay fixed for
// the process lifetime.
type Loader struct {
	client fetcher
	store  *Store
	rate   float64
	rand   *rand.Rand
	logger *zap.Logger
}

// NewLoader validates dependencies and constructs a Loader.
func NewLoader(deps LoaderDeps) (*Loader, error) {
	if deps.Client == nil || deps.Store == nil {
		return nil, ErrLoaderInvalidInput
	}
	rate := deps.ConversionRate
	if rate <= 0 {
		rate = defaultConversionRate
	}
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		client: deps.Client,
		store:  deps.Store,
		rate:   rate,
		rand:   rng,
		logger: logger,
	}, nil
}

// Load fetches products and categories concurrently, normalises them, and
// publishes the result to the store. A failed load still marks the store
// loaded so the API serves an empty catalog rather than blocking.
func (l *Loader) Load(ctx context.Context) error {
	var (
		products   []rawProduct
		categories []string
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		fetched, err := l.client.FetchProducts(groupCtx)
		if err != nil {
			return err
		}
		products = fetched
		return nil
	})
	group.Go(func() error {
		fetched, err := l.client.FetchCategories(groupCtx)
		if err != nil {
			return err
		}
		categories = fetched
		return nil
	})

	if err := group.Wait(); err != nil {
		l.store.MarkLoadFailed()
		l.logger.Warn("catalog load failed, serving empty catalog", zap.Error(err))
		return err
	}

	normalized := make([]domain.Product, 0, len(products))
	for _, raw := range products {
		normalized = append(normalized, l.normalize(raw))
	}

	l.store.SetCatalog(normalized, buildCategories(categories))
	l.logger.Info("catalog loaded",
		zap.Int("products", len(normalized)),
		zap.Int("categories", len(categories)),
	)
	return nil
}

func (l *Loader) normalize(raw rawProduct) domain.Product {
	return domain.Product{
		ID:                   raw.ID,
		Title:                strings.TrimSpace(raw.Title),
		Description:          strings.TrimSpace(raw.Description),
		ImageURL:             strings.TrimSpace(raw.Image),
		Category:             strings.TrimSpace(raw.Category),
		BasePrice:            raw.Price,
		DisplayPrice:         toINR(raw.Price, l.rate),
		DisplayOriginalPrice: toINR(raw.Price*markupFactor, l.rate),
		DiscountPercent:      flatDiscountPercent,
		InStock:              l.rand.Float64() > outOfStockChance,
		Rating: domain.Rating{
			Rate:  raw.Rating.Rate,
			Count: raw.Rating.Count,
		},
		ReviewCount: reviewCountFloor + l.rand.Intn(reviewCountSpread),
	}
}

func toINR(usd float64, rate float64) int64 {
	return int64(math.Round(usd * rate))
}

// buildCategories dedupes the fetched names and prepends the synthetic
// all-products entry. Source order is kept.
func buildCategories(names []string) []domain.Category {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		id := strings.ToLower(strings.TrimSpace(name))
		if id == "" || id == domain.CategoryAll {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	categories := make([]domain.Category, 0, len(unique)+1)
	categories = append(categories, domain.Category{ID: domain.CategoryAll, DisplayName: "All Products"})
	for _, id := range unique {
		categories = append(categories, domain.Category{ID: id, DisplayName: capitalizeFirst(id)})
	}
	return categories
}

// capitalizeFirst upper-cases only the first letter, leaving the rest of the
// name untouched ("men's clothing" => "Men's clothing").
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
