package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"furniture-shop/models"
	"furniture-shop/repositories"
)

const catalogCacheTTL = 5 * time.Minute

// CatalogService serves product listings from the document store with an
// optional redis read cache in front. A nil redis client means every
// read goes straight to the repository.
type CatalogService struct {
	products *repositories.ProductRepository
	cache    *redis.Client
}

func NewCatalogService(products *repositories.ProductRepository, cache *redis.Client) *CatalogService {
	return &CatalogService{products: products, cache: cache}
}

func (s *CatalogService) GetCategories() []models.Category {
	return repositories.SampleCategories()
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.cached(ctx, "catalog:products", func() ([]models.Product, error) {
		return s.products.GetProducts(ctx)
	})
}

func (s *CatalogService) GetProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return s.cached(ctx, "catalog:products:"+categoryID, func() ([]models.Product, error) {
		return s.products.GetProductsByCategory(ctx, categoryID)
	})
}

func (s *CatalogService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.products.GetProductByID(ctx, id)
}

func (s *CatalogService) cached(ctx context.Context, key string, fetch func() ([]models.Product, error)) ([]models.Product, error) {
	if s.cache != nil {
		if payload, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var products []models.Product
			if err := json.Unmarshal(payload, &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := fetch()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(products); err == nil {
			s.cache.Set(ctx, key, payload, catalogCacheTTL)
		}
	}
	return products, nil
}
