package product

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepo struct {
	items map[string]*Product
	gets  int
}

func (r *countingRepo) List(ctx context.Context, q Query) ([]Product, int, error) {
	return nil, 0, nil
}

func (r *countingRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	r.gets++
	p, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *countingRepo) PricesByIDs(ctx context.Context, ids []string) (map[string]Quote, error) {
	return nil, nil
}

func setupCache(t *testing.T) (*CachedRepo, *countingRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	inner := &countingRepo{items: map[string]*Product{
		"medjool": {ID: "medjool", Name: "Medjool Dates", Category: "dates", Price: 89900, InStock: true},
	}}
	return NewCachedRepo(inner, client, time.Minute), inner, mr
}

func TestCachedRepo_MissThenHit(t *testing.T) {
	cache, inner, mr := setupCache(t)
	ctx := context.Background()

	p, err := cache.GetByID(ctx, "medjool")
	require.NoError(t, err)
	assert.Equal(t, int64(89900), p.Price)
	assert.Equal(t, 1, inner.gets)
	assert.True(t, mr.Exists(cacheKey("medjool")))

	p, err = cache.GetByID(ctx, "medjool")
	require.NoError(t, err)
	assert.Equal(t, "Medjool Dates", p.Name)
	assert.Equal(t, 1, inner.gets, "second read must be served from redis")
}

func TestCachedRepo_TTLApplied(t *testing.T) {
	cache, _, mr := setupCache(t)

	_, err := cache.GetByID(context.Background(), "medjool")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, mr.TTL(cacheKey("medjool")))
}

func TestCachedRepo_NotFoundIsNotCached(t *testing.T) {
	cache, inner, mr := setupCache(t)

	_, err := cache.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, mr.Exists(cacheKey("nope")))
	assert.Equal(t, 1, inner.gets)
}

func TestCachedRepo_CorruptEntryFallsBack(t *testing.T) {
	cache, inner, mr := setupCache(t)
	require.NoError(t, mr.Set(cacheKey("medjool"), "{not json"))

	p, err := cache.GetByID(context.Background(), "medjool")
	require.NoError(t, err)
	assert.Equal(t, "medjool", p.ID)
	assert.Equal(t, 1, inner.gets)

	raw, err := mr.Get(cacheKey("medjool"))
	require.NoError(t, err)
	var cached Product
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, "Medjool Dates", cached.Name)
}

func TestCachedRepo_RedisDownFallsBack(t *testing.T) {
	cache, inner, mr := setupCache(t)
	mr.Close()

	p, err := cache.GetByID(context.Background(), "medjool")
	require.NoError(t, err)
	assert.Equal(t, "medjool", p.ID)
	assert.Equal(t, 1, inner.gets)
}

func TestBuildFilter(t *testing.T) {
	minP, maxP := int64(1000), int64(5000)

	where, args := buildFilter(Query{Category: "all"})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = buildFilter(Query{Category: "Dates", MinPrice: &minP, MaxPrice: &maxP, InStock: true})
	assert.Equal(t, "WHERE category ILIKE $1 AND price >= $2 AND price <= $3 AND in_stock = $4", where)
	assert.Equal(t, []any{"Dates", int64(1000), int64(5000), true}, args)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0))
	assert.Equal(t, 1, TotalPages(12))
	assert.Equal(t, 2, TotalPages(13))
}
