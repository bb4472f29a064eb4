package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when a path parameter is not a well-formed
// 24-character hex ObjectID.
var ErrInvalidID = errors.New("invalid id format")

// ParseID decodes the transport form of a document identifier.
func ParseID(hex string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
