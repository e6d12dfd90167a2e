package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/models"
)

// MenuRepository handles database operations for MenuItem.
type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{col: db.Collection("menu")}
}

// All returns the full menu.
func (r *MenuRepository) All(ctx context.Context) ([]models.MenuItem, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single menu item. Returns mongo.ErrNoDocuments when
// the item does not exist.
func (r *MenuRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.MenuItem, error) {
	var item models.MenuItem
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	return item, err
}

// Insert persists a new menu item.
func (r *MenuRepository) Insert(ctx context.Context, item *models.MenuItem) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpdateByID overwrites the editable fields of a menu item.
func (r *MenuRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, item *models.MenuItem) (int64, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":     item.Name,
			"category": item.Category,
			"price":    item.Price,
			"recipe":   item.Recipe,
			"image":    item.Image,
		}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// UpdateImage sets only the image URL of a menu item.
func (r *MenuRepository) UpdateImage(ctx context.Context, id primitive.ObjectID, imageURL string) (int64, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"image": imageURL}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// DeleteByID removes a menu item and reports how many documents matched.
func (r *MenuRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// EstimatedCount returns the approximate number of menu items.
func (r *MenuRepository) EstimatedCount(ctx context.Context) (int64, error) {
	return r.col.EstimatedDocumentCount(ctx)
}
