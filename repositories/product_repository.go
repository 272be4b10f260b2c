package repositories

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"furniture-shop/models"
)

var ErrProductNotFound = errors.New("product not found")

// productCollection is the slice of the driver collection API the
// repository actually uses. *mongo.Collection satisfies it.
type productCollection interface {
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
}

// ProductRepository reads the products collection. Products are treated
// as immutable once fetched.
type ProductRepository struct {
	collection productCollection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection("products")}
}

func (r *ProductRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *ProductRepository) GetProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return r.find(ctx, bson.M{"categoryId": categoryID})
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// PopulateIfEmpty seeds the catalog with the sample set on a fresh
// database. The bootstrap is idempotent: if any product already exists
// nothing is written.
func (r *ProductRepository) PopulateIfEmpty(ctx context.Context) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(sampleProducts))
	for _, p := range sampleProducts {
		docs = append(docs, p)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("Seeded products collection with %d sample products", len(sampleProducts))
	return nil
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
