package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

const DefaultRedisStoreKey = "appointments"

// AppointmentRedisRepository stores the appointment list as a JSON blob
// under a single key.
type AppointmentRedisRepository struct {
	client *redis.Client
	key    string
}

func NewAppointmentRedisRepository(client *redis.Client, key string) *AppointmentRedisRepository {
	if key == "" {
		key = DefaultRedisStoreKey
	}
	return &AppointmentRedisRepository{client: client, key: key}
}

func (r *AppointmentRedisRepository) Load(ctx context.Context) ([]domain.Appointment, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Appointment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return decodeBlob(data)
}

func (r *AppointmentRedisRepository) Save(ctx context.Context, aps []domain.Appointment) error {
	data, err := encodeBlob(aps)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

const pendingKeyPrefix = "booking:pending:"

func pendingKey(id string) string {
	return fmt.Sprintf("%s%s", pendingKeyPrefix, id)
}

// PendingRedisRepository keeps conflicted bookings in redis with a TTL.
type PendingRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPendingRedisRepository(client *redis.Client, ttl time.Duration) *PendingRedisRepository {
	return &PendingRedisRepository{client: client, ttl: ttl}
}

func (r *PendingRedisRepository) Put(ctx context.Context, p domain.Pending) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, pendingKey(p.ID), data, r.ttl).Err()
}

func (r *PendingRedisRepository) Take(ctx context.Context, id string) (*domain.Pending, error) {
	data, err := r.client.GetDel(ctx, pendingKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrPendingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis getdel %s: %w", id, err)
	}

	var p domain.Pending
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode pending booking %s: %w", id, err)
	}
	return &p, nil
}

var (
	_ domain.Repository        = (*AppointmentRedisRepository)(nil)
	_ domain.PendingRepository = (*PendingRedisRepository)(nil)
)
