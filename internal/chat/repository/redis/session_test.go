package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"emergency-triage/internal/chat"
	"emergency-triage/internal/chat/repository"
	"emergency-triage/internal/model"
	"emergency-triage/pkg/log"
)

// fakeRedis implements the few commands the repository uses.
type fakeRedis struct {
	redis.Cmdable
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = string(value.([]byte))
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	repo := New(rdb, 15*time.Minute, log.NewNop())

	state := model.NewConversationState().WithTrade(model.TradeLocksmith).Advance()
	in := chat.Session{ID: "abc", State: state}
	if err := repo.SaveSession(ctx, in); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	if _, ok := rdb.data["triage:session:abc"]; !ok {
		t.Fatalf("expected key triage:session:abc, got %v", rdb.data)
	}
	if rdb.ttl["triage:session:abc"] != 15*time.Minute {
		t.Errorf("ttl = %v, want 15m", rdb.ttl["triage:session:abc"])
	}

	out, err := repo.GetSession(ctx, "abc")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if out.State.DetectedTrade != model.TradeLocksmith || out.State.Step != model.StepLocationCheck {
		t.Errorf("got state %+v", out.State)
	}

	if err := repo.DeleteSession(ctx, "abc"); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if _, err := repo.GetSession(ctx, "abc"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := repo.DeleteSession(ctx, "abc"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRedisErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	rdb.err = errors.New("connection refused")
	repo := New(rdb, time.Minute, log.NewNop())

	if _, err := repo.GetSession(ctx, "x"); !errors.Is(err, repository.ErrFailedToGet) {
		t.Errorf("GetSession err = %v, want ErrFailedToGet", err)
	}
	if err := repo.SaveSession(ctx, chat.Session{ID: "x"}); !errors.Is(err, repository.ErrFailedToSave) {
		t.Errorf("SaveSession err = %v, want ErrFailedToSave", err)
	}
	if err := repo.DeleteSession(ctx, "x"); !errors.Is(err, repository.ErrFailedToDelete) {
		t.Errorf("DeleteSession err = %v, want ErrFailedToDelete", err)
	}
}

func TestRedisCorruptPayload(t *testing.T) {
	rdb := newFakeRedis()
	rdb.data["triage:session:bad"] = "{not json"
	repo := New(rdb, time.Minute, log.NewNop())

	if _, err := repo.GetSession(context.Background(), "bad"); !errors.Is(err, repository.ErrFailedToGet) {
		t.Errorf("err = %v, want ErrFailedToGet", err)
	}
}
