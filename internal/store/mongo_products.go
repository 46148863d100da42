package store

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agriconnect-backend/internal/models"
)

func (m *MongoDB) CreateProduct(ctx context.Context, p *models.Product) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err := m.Products.InsertOne(ctx, p)
	return err
}

func (m *MongoDB) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return findAll[models.Product](ctx, m.Products, bson.M{})
}

func (m *MongoDB) FilterProducts(ctx context.Context, name string) ([]*models.Product, error) {
	filter := bson.M{}
	if name != "" {
		filter["product_name"] = bson.M{"$regex": regexp.QuoteMeta(name), "$options": "i"}
	}
	return findAll[models.Product](ctx, m.Products, filter)
}

func (m *MongoDB) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return m.findProduct(ctx, bson.M{"_id": oid})
}

func (m *MongoDB) FindProductByOwnerAndName(ctx context.Context, email, name string) (*models.Product, error) {
	return m.findProduct(ctx, bson.M{"email": email, "product_name": name})
}

func (m *MongoDB) findProduct(ctx context.Context, filter bson.M) (*models.Product, error) {
	var p models.Product
	err := m.Products.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *MongoDB) ListProductsByEmail(ctx context.Context, email string) ([]*models.Product, error) {
	return findAll[models.Product](ctx, m.Products, bson.M{"email": email})
}

func (m *MongoDB) UpdateProduct(ctx context.Context, id string, changes models.ProductChanges) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	update := productUpdate(changes)
	if len(update) == 0 {
		return m.findProduct(ctx, bson.M{"_id": oid})
	}

	var p models.Product
	err = m.Products.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *MongoDB) DeleteProduct(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := m.Products.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// productUpdate builds the update document for the fields that were sent.
// An empty price is removed rather than stored.
func productUpdate(changes models.ProductChanges) bson.M {
	set := bson.M{}
	setIfPresent(set, "product_name", changes.ProductName)
	setIfPresent(set, "mobile_number", changes.MobileNumber)
	setIfPresent(set, "address", changes.Address)
	setIfPresent(set, "farming", changes.Farming)
	setIfPresent(set, "stock_availability", changes.StockAvailability)

	update := bson.M{}
	if changes.Price != nil && *changes.Price == "" {
		update["$unset"] = bson.M{"price": ""}
	} else {
		setIfPresent(set, "price", changes.Price)
	}
	if len(set) > 0 {
		update["$set"] = set
	}
	return update
}

func setIfPresent(set bson.M, key string, val *string) {
	if val != nil {
		set[key] = *val
	}
}
