package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNilHandleFailsFast(t *testing.T) {
	s := New(nil)
	ctx := context.Background()
	oid := primitive.NewObjectID()

	assert.False(t, s.Available())

	_, err := s.Insert(ctx, "cv", bson.M{"name": "x"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.Find(ctx, "cv", bson.M{}, 1, nil)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.FindByID(ctx, "cv", oid)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.UpdateByID(ctx, "cv", oid, bson.M{"name": "y"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.DeleteByID(ctx, "cv", oid)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.Collections(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestParseIDRoundTrip(t *testing.T) {
	want := primitive.NewObjectID()

	got, err := ParseID(want.Hex())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Len(t, got.Hex(), 24)
}

func TestParseIDRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"not-an-id",
		"abc123",
		"fffffffffffffffffffffff",              // 23 chars
		"fffffffffffffffffffffffff",            // 25 chars
		"zzzzzzzzzzzzzzzzzzzzzzzz",             // 24 chars, not hex
		"ffffffffffffffffffffffff extra stuff", // trailing garbage
	}
	for _, in := range cases {
		_, err := ParseID(in)
		assert.ErrorIs(t, err, ErrInvalidID, "input %q", in)
	}
}
