package store

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/alexedwards/scs/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SessionStore is an scs store over the sessions collection. Documents are
// keyed by an HMAC of the cookie token, so the collection alone cannot be
// replayed as cookies.
type SessionStore struct {
	coll   *mongo.Collection
	secret []byte
}

var _ scs.CtxStore = (*SessionStore)(nil)

type sessionDoc struct {
	ID        string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	ExpiresAt time.Time `bson:"expires_at"`
}

func NewSessionStore(coll *mongo.Collection, secret string) *SessionStore {
	return &SessionStore{coll: coll, secret: []byte(secret)}
}

func (s *SessionStore) key(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// liveFilter matches the token's session only while it has not expired. The
// TTL index removes expired documents eventually, not at expiry.
func (s *SessionStore) liveFilter(token string, now time.Time) bson.M {
	return bson.M{
		"_id":        s.key(token),
		"expires_at": bson.M{"$gt": now},
	}
}

func (s *SessionStore) FindCtx(ctx context.Context, token string) ([]byte, bool, error) {
	var doc sessionDoc
	err := s.coll.FindOne(ctx, s.liveFilter(token, time.Now())).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc.Data, true, nil
}

func (s *SessionStore) CommitCtx(ctx context.Context, token string, b []byte, expiry time.Time) error {
	key := s.key(token)
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		sessionDoc{ID: key, Data: b, ExpiresAt: expiry},
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *SessionStore) DeleteCtx(ctx context.Context, token string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": s.key(token)})
	return err
}

func (s *SessionStore) Find(token string) ([]byte, bool, error) {
	return s.FindCtx(context.Background(), token)
}

func (s *SessionStore) Commit(token string, b []byte, expiry time.Time) error {
	return s.CommitCtx(context.Background(), token, b, expiry)
}

func (s *SessionStore) Delete(token string) error {
	return s.DeleteCtx(context.Background(), token)
}
