package handlers

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// serialize reshapes a storage document for transport: the internal "_id"
// field is dropped and re-inserted under "id" in its hex form. A document
// without "_id" passes through unchanged, so a second pass is a no-op.
func serialize(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	raw, ok := out["_id"]
	if !ok {
		return out
	}
	delete(out, "_id")
	if oid, isOID := raw.(primitive.ObjectID); isOID {
		out["id"] = oid.Hex()
	} else {
		out["id"] = fmt.Sprint(raw)
	}
	return out
}
