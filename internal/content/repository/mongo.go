package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/apaudel/folio/internal/content"
)

// DocumentKey is the _id of the singleton content document.
const DocumentKey = "siteContent"

// MongoRepository stores the content document in a MongoDB collection
// under a fixed _id.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Get(ctx context.Context) (content.Document, error) {
	var doc content.Document
	err := r.col.FindOne(ctx, bson.M{"_id": DocumentKey}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return content.Document{}, ErrNotFound
		}
		return content.Document{}, classify(err)
	}
	return doc, nil
}

// Put upserts with $set so fields outside the known document shape are
// preserved. Sanitize always emits every known field, which makes this
// behave as a full replace for the fields this build understands.
func (r *MongoRepository) Put(ctx context.Context, doc content.Document) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": DocumentKey},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return classify(err)
	}
	return nil
}

// classify folds driver errors into the repository taxonomy: a missing
// namespace or an unreachable server both surface as
// ErrStoreUnavailable, anything else passes through wrapped.
func classify(err error) error {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceNotFound" {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("content store: %w", err)
}
