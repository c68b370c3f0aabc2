package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mernspace/catalog-service/internal/core/domain"
	"github.com/mernspace/catalog-service/internal/core/ports"
)

const collectionToppings = "toppings"

type ToppingRepository struct {
	col *mongo.Collection
}

func NewToppingRepository(db *mongo.Database) *ToppingRepository {
	return &ToppingRepository{col: db.Collection(collectionToppings)}
}

// Create inserts a new topping document. A duplicate (name, tenant_id) pair
// is rejected by the unique index and translated to the domain conflict error.
func (r *ToppingRepository) Create(ctx context.Context, t *domain.Topping) (*domain.Topping, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateName
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = oid.Hex()
	}
	return t, nil
}

// Update applies the non-nil patch fields via $set and returns the updated
// document.
func (r *ToppingRepository) Update(ctx context.Context, id string, patch ports.ToppingPatch) (*domain.Topping, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrToppingNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.TenantID != nil {
		set["tenant_id"] = *patch.TenantID
	}
	if patch.IsPublished != nil {
		set["is_published"] = *patch.IsPublished
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var updated domain.Topping
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrToppingNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateName
		}
		return nil, err
	}
	return &updated, nil
}

func (r *ToppingRepository) GetByID(ctx context.Context, id string) (*domain.Topping, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrToppingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Topping
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrToppingNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *ToppingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrToppingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrToppingNotFound
	}
	return nil
}

// List runs the shared match+facet pipeline and returns the requested page
// plus the total match count.
func (r *ToppingRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Topping, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Aggregate(ctx, paginatePipeline(buildMatch(filter), filter.Page, filter.Limit))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var pages []struct {
		Metadata []pageMetadata    `bson:"metadata"`
		Data     []*domain.Topping `bson:"data"`
	}
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, 0, err
	}
	if len(pages) == 0 {
		return []*domain.Topping{}, 0, nil
	}
	return pages[0].Data, pageTotal(pages[0].Metadata), nil
}

// EnsureIndexes creates the compound unique index enforcing per-tenant name
// uniqueness.
func (r *ToppingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}, {Key: "tenant_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "tenant_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
