package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"furniture-shop/models"
)

// fakeProductCollection is an in-memory stand-in for the products
// collection, good enough for equality filters on _id and categoryId.
type fakeProductCollection struct {
	products []models.Product
	inserts  int
}

func (f *fakeProductCollection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductCollection) InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	f.inserts++
	for _, doc := range documents {
		f.products = append(f.products, doc.(models.Product))
	}
	return &mongo.InsertManyResult{}, nil
}

func (f *fakeProductCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	docs := make([]interface{}, 0, len(f.products))
	for _, p := range f.matching(filter) {
		docs = append(docs, p)
	}
	return mongo.NewCursorFromDocuments(docs, nil, nil)
}

func (f *fakeProductCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	matched := f.matching(filter)
	if len(matched) == 0 {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	return mongo.NewSingleResultFromDocument(matched[0], nil, nil)
}

func (f *fakeProductCollection) matching(filter interface{}) []models.Product {
	criteria, _ := filter.(bson.M)

	matched := []models.Product{}
	for _, p := range f.products {
		if id, ok := criteria["_id"]; ok && id != p.ID {
			continue
		}
		if categoryID, ok := criteria["categoryId"]; ok && categoryID != p.CategoryID {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func TestPopulateIfEmptySeedsFreshCollection(t *testing.T) {
	collection := &fakeProductCollection{}
	repo := &ProductRepository{collection: collection}

	require.NoError(t, repo.PopulateIfEmpty(context.Background()))

	assert.Equal(t, 1, collection.inserts)
	assert.Len(t, collection.products, len(sampleProducts))
}

func TestPopulateIfEmptyIsIdempotent(t *testing.T) {
	collection := &fakeProductCollection{}
	repo := &ProductRepository{collection: collection}

	require.NoError(t, repo.PopulateIfEmpty(context.Background()))
	require.NoError(t, repo.PopulateIfEmpty(context.Background()))

	assert.Equal(t, 1, collection.inserts)
	assert.Len(t, collection.products, len(sampleProducts))
}

func TestPopulateIfEmptyLeavesExistingCatalogAlone(t *testing.T) {
	collection := &fakeProductCollection{
		products: []models.Product{{ID: "custom", Name: "Custom Armchair", Price: 1299.00}},
	}
	repo := &ProductRepository{collection: collection}

	require.NoError(t, repo.PopulateIfEmpty(context.Background()))

	assert.Zero(t, collection.inserts)
	require.Len(t, collection.products, 1)
	assert.Equal(t, "custom", collection.products[0].ID)
}

func TestGetProductsByCategoryFiltersSeededCatalog(t *testing.T) {
	collection := &fakeProductCollection{}
	repo := &ProductRepository{collection: collection}
	require.NoError(t, repo.PopulateIfEmpty(context.Background()))

	products, err := repo.GetProductsByCategory(context.Background(), "sofas")
	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "sofas", p.CategoryID)
	}
}

func TestGetProductByIDNotFound(t *testing.T) {
	collection := &fakeProductCollection{}
	repo := &ProductRepository{collection: collection}
	require.NoError(t, repo.PopulateIfEmpty(context.Background()))

	_, err := repo.GetProductByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
