package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"agriconnect-backend/internal/models"
)

func strPtr(s string) *string { return &s }

func TestSessionLiveFilter(t *testing.T) {
	s := NewSessionStore(nil, "secret")
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	filter := s.liveFilter("token", now)

	assert.Equal(t, s.key("token"), filter["_id"])
	assert.Equal(t, bson.M{"$gt": now}, filter["expires_at"])
}

func TestSessionDocRoundTrip(t *testing.T) {
	expiry := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	in := sessionDoc{ID: "abc", Data: []byte{0x01, 0x02}, ExpiresAt: expiry}

	raw, err := bson.Marshal(in)
	require.NoError(t, err)

	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "_id")
	assert.Contains(t, fields, "data")
	assert.Contains(t, fields, "expires_at")

	var out sessionDoc
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.Data, out.Data)
	assert.True(t, expiry.Equal(out.ExpiresAt))
}

func TestProductUpdate(t *testing.T) {
	tests := []struct {
		name    string
		changes models.ProductChanges
		want    bson.M
	}{
		{"nothing sent", models.ProductChanges{}, bson.M{}},
		{
			"set fields",
			models.ProductChanges{StockAvailability: strPtr("5"), Price: strPtr("9.99")},
			bson.M{"$set": bson.M{"stock_availability": "5", "price": "9.99"}},
		},
		{
			"clear price",
			models.ProductChanges{Price: strPtr("")},
			bson.M{"$unset": bson.M{"price": ""}},
		},
		{
			"clear price and set others",
			models.ProductChanges{Price: strPtr(""), Farming: strPtr("organic")},
			bson.M{"$unset": bson.M{"price": ""}, "$set": bson.M{"farming": "organic"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, productUpdate(tt.changes))
		})
	}
}
