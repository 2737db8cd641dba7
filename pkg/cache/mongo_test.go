package cache

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

var mongoNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newMockMongo(mt *mtest.T, now time.Time) *MongoCache {
	return &MongoCache{coll: mt.Coll, now: func() time.Time { return now }}
}

func entryDoc(key, data string, expiresAt *time.Time) bson.D {
	doc := bson.D{{Key: "_id", Value: key}, {Key: "data", Value: []byte(data)}}
	if expiresAt != nil {
		doc = append(doc, bson.E{Key: "expires_at", Value: *expiresAt})
	}
	return doc
}

func TestMongoCacheGet(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	expires := mongoNow.Add(time.Hour)

	tests := []struct {
		name     string
		now      time.Time
		batch    []bson.D
		wantData string
		wantHit  bool
	}{
		{"hit without expiry", mongoNow, []bson.D{entryDoc("k", "tiles", nil)}, "tiles", true},
		{"hit before expiry", mongoNow, []bson.D{entryDoc("k", "tiles", &expires)}, "tiles", true},
		{"miss after expiry", expires.Add(time.Second), []bson.D{entryDoc("k", "tiles", &expires)}, "", false},
		{"miss when absent", mongoNow, nil, "", false},
	}

	for _, tt := range tests {
		mt.Run(tt.name, func(mt *mtest.T) {
			ns := mt.DB.Name() + "." + mt.Coll.Name()
			mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, tt.batch...))

			data, hit, err := newMockMongo(mt, tt.now).Get(context.Background(), "k")
			if err != nil {
				mt.Fatalf("Get() error: %v", err)
			}
			if hit != tt.wantHit || string(data) != tt.wantData {
				mt.Errorf("Get() = %q, %v, want %q, %v", data, hit, tt.wantData, tt.wantHit)
			}
		})
	}
}

func TestMongoCacheSet(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ttl sets expires_at", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		if err := newMockMongo(mt, mongoNow).Set(context.Background(), "k", []byte("v"), time.Hour); err != nil {
			mt.Fatalf("Set() error: %v", err)
		}

		cmd := mt.GetStartedEvent().Command
		if upsert, ok := cmd.Lookup("updates", "0", "upsert").BooleanOK(); !ok || !upsert {
			mt.Error("Set should upsert")
		}
		at, ok := cmd.Lookup("updates", "0", "u", "expires_at").TimeOK()
		if !ok || !at.Equal(mongoNow.Add(time.Hour)) {
			mt.Errorf("expires_at = %v, %v, want %v", at, ok, mongoNow.Add(time.Hour))
		}
	})

	mt.Run("zero ttl omits expires_at", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		if err := newMockMongo(mt, mongoNow).Set(context.Background(), "k", []byte("v"), 0); err != nil {
			mt.Fatalf("Set() error: %v", err)
		}

		cmd := mt.GetStartedEvent().Command
		if _, err := cmd.LookupErr("updates", "0", "u", "expires_at"); err == nil {
			mt.Error("entry without ttl should not carry expires_at")
		}
	})
}

func TestMongoCacheDeleteAndClear(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		if err := newMockMongo(mt, mongoNow).Delete(context.Background(), "k"); err != nil {
			mt.Errorf("Delete() error: %v", err)
		}
	})

	mt.Run("clear counts deleted entries", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}))
		n, err := newMockMongo(mt, mongoNow).Clear(context.Background())
		if err != nil || n != 3 {
			mt.Errorf("Clear() = %d, %v, want 3, nil", n, err)
		}
	})

	mt.Run("server error is not retried", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 13, Name: "Unauthorized", Message: "not authorized",
		}))
		err := newMockMongo(mt, mongoNow).Delete(context.Background(), "k")
		if err == nil || IsRetryable(err) {
			mt.Errorf("Delete() = %v, want a non-retryable error", err)
		}
	})
}

func TestMongoEntryExpired(t *testing.T) {
	at := mongoNow.Add(time.Minute)
	tests := []struct {
		name  string
		entry mongoEntry
		now   time.Time
		want  bool
	}{
		{"no expiry", mongoEntry{}, mongoNow.Add(24 * time.Hour), false},
		{"before", mongoEntry{ExpiresAt: &at}, mongoNow, false},
		{"at the instant", mongoEntry{ExpiresAt: &at}, at, false},
		{"after", mongoEntry{ExpiresAt: &at}, at.Add(time.Nanosecond), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.expired(tt.now); got != tt.want {
				t.Errorf("expired(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestClassifyMongo(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil", nil, false},
		{"no documents", mongo.ErrNoDocuments, false},
		{"command error", mongo.CommandError{Code: 13, Name: "Unauthorized"}, false},
		{"network error", mongo.CommandError{Code: 6, Labels: []string{"NetworkError"}}, true},
		{"deadline", context.DeadlineExceeded, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyMongo(tt.err)
			if IsRetryable(got) != tt.retryable {
				t.Errorf("IsRetryable(classifyMongo(%v)) = %v, want %v", tt.err, !tt.retryable, tt.retryable)
			}
			if tt.err != nil && got.Error() != tt.err.Error() {
				t.Errorf("classifyMongo(%v) = %q, want the original message", tt.err, got)
			}
		})
	}
}
