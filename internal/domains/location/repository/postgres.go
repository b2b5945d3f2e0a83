package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fulfilment-backend/internal/domains/location"
	"fulfilment-backend/internal/infrastructure/cache"
	"fulfilment-backend/pkg/logger"
)

const cacheTTL = 10 * time.Minute

type postgresResolver struct {
	db    *pgxpool.Pool
	cache *cache.RedisClient
}

// NewResolver builds a Resolver backed by Postgres with a Redis
// cache-aside layer. The cache may be nil, in which case every lookup
// hits the database.
func NewResolver(db *pgxpool.Pool, cache *cache.RedisClient) location.Resolver {
	return &postgresResolver{db: db, cache: cache}
}

func (r *postgresResolver) Resolve(ctx context.Context, identifier string) (*location.Location, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, nil
	}

	if loc := r.fromCache(ctx, identifier); loc != nil {
		return loc, nil
	}

	query := `
		SELECT identifier, max_number_of_warehouses, max_capacity
		FROM locations
		WHERE identifier = $1`

	var loc location.Location
	err := r.db.QueryRow(ctx, query, identifier).Scan(
		&loc.Identifier,
		&loc.MaxNumberOfWarehouses,
		&loc.MaxCapacity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	r.toCache(ctx, &loc)
	return &loc, nil
}

func (r *postgresResolver) fromCache(ctx context.Context, identifier string) *location.Location {
	if r.cache == nil {
		return nil
	}

	data, err := r.cache.Client.Get(ctx, cacheKey(identifier)).Bytes()
	if err != nil {
		return nil
	}

	var loc location.Location
	if err := json.Unmarshal(data, &loc); err != nil {
		return nil
	}
	return &loc
}

func (r *postgresResolver) toCache(ctx context.Context, loc *location.Location) {
	if r.cache == nil {
		return
	}

	data, err := json.Marshal(loc)
	if err != nil {
		return
	}

	// Cache failures never fail the lookup, the database already answered.
	if err := r.cache.Client.Set(ctx, cacheKey(loc.Identifier), data, cacheTTL).Err(); err != nil {
		logger.Warn("location cache set failed", map[string]interface{}{
			"identifier": loc.Identifier,
			"error":      err.Error(),
		})
	}
}

func cacheKey(identifier string) string {
	return "location:" + identifier
}
