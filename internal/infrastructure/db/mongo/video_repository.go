package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/reelhub/reelhub-api/internal/core/domain"
)

const videosCollection = "videos"

type VideoRepository struct {
	coll *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{coll: db.Collection(videosCollection)}
}

// Create inserts a new video document.
func (r *VideoRepository) Create(ctx context.Context, v *domain.Video) (*domain.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *v
	doc.ID = ""
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert video: %w", err)
	}

	created := *v
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// ListNewestFirst returns all videos sorted by created_at descending.
func (r *VideoRepository) ListNewestFirst(ctx context.Context) ([]*domain.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer cur.Close(ctx)

	videos := make([]*domain.Video, 0)
	for cur.Next(ctx) {
		var doc struct {
			ID             primitive.ObjectID    `bson:"_id"`
			Title          string                `bson:"title"`
			Description    string                `bson:"description,omitempty"`
			FileURL        string                `bson:"file_url"`
			ThumbnailURL   string                `bson:"thumbnail_url,omitempty"`
			Controls       bool                  `bson:"controls"`
			Transformation domain.Transformation `bson:"transformation"`
			CreatedAt      time.Time             `bson:"created_at"`
			UpdatedAt      time.Time             `bson:"updated_at"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode video: %w", err)
		}
		videos = append(videos, &domain.Video{
			ID:             doc.ID.Hex(),
			Title:          doc.Title,
			Description:    doc.Description,
			FileURL:        doc.FileURL,
			ThumbnailURL:   doc.ThumbnailURL,
			Controls:       doc.Controls,
			Transformation: doc.Transformation,
			CreatedAt:      doc.CreatedAt,
			UpdatedAt:      doc.UpdatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate videos: %w", err)
	}
	return videos, nil
}

// EnsureIndexes creates the feed sort index on the videos collection.
func (r *VideoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
