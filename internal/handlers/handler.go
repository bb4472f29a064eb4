package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/andriamanitra/portfolio-api/internal/config"
)

const (
	cvCollection      = "cv"
	projectCollection = "project"
)

// Gateway is the slice of the document store the route handlers need.
// *store.Store satisfies it; tests substitute a mock.
type Gateway interface {
	Available() bool
	Insert(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error)
	Find(ctx context.Context, collection string, filter bson.M, limit int64, sort bson.D) ([]bson.M, error)
	FindByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error)
	UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, fields bson.M) (int64, error)
	DeleteByID(ctx context.Context, collection string, id primitive.ObjectID) (int64, error)
	Collections(ctx context.Context) ([]string, error)
}

type Handler struct {
	Store Gateway
	Cfg   *config.Config
}

func NewHandler(store Gateway, cfg *config.Config) *Handler {
	return &Handler{
		Store: store,
		Cfg:   cfg,
	}
}
