package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisStore — резервное хранилище заявок. Это не реплика: сюда попадают
// только записи, сделанные в момент недоступности Postgres, расхождение
// разбирается вручную. Уникальность слота держится на SETNX-ключах.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

const (
	bookingKeyPrefix = "booking:"
	slotKeyPrefix    = "slot:"
	createdIndexKey  = "bookings:created"
	dateIndexPrefix  = "bookings:date:"
)

func bookingKey(id string) string { return bookingKeyPrefix + id }

func slotKey(date, t string) string { return slotKeyPrefix + date + ":" + t }

func dateIndexKey(date string) string { return dateIndexPrefix + date }

func (r *RedisStore) Create(ctx context.Context, b *domain.Booking) error {
	if b.HasSlot() {
		ok, err := r.client.SetNX(ctx, slotKey(b.BookingDate, b.BookingTime), b.ID, 0).Result()
		if err != nil {
			return fmt.Errorf("reserve slot: %w", err)
		}
		if !ok {
			return domain.ErrSlotTaken
		}
	}

	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal booking: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, bookingKey(b.ID), raw, 0)
	pipe.ZAdd(ctx, createdIndexKey, redis.Z{
		Score:  float64(b.CreatedAt.UnixNano()),
		Member: b.ID,
	})
	if b.BookingDate != "" {
		pipe.SAdd(ctx, dateIndexKey(b.BookingDate), b.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store booking: %w", err)
	}

	return nil
}

func (r *RedisStore) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	raw, err := r.client.Get(ctx, bookingKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return unmarshalBooking(raw)
}

func (r *RedisStore) List(ctx context.Context) ([]*domain.Booking, error) {
	ids, err := r.client.ZRevRange(ctx, createdIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list booking ids: %w", err)
	}

	return r.loadMany(ctx, ids)
}

func (r *RedisStore) ListActiveByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	ids, err := r.client.SMembers(ctx, dateIndexKey(date)).Result()
	if err != nil {
		return nil, fmt.Errorf("list booking ids by date: %w", err)
	}

	all, err := r.loadMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if b.Status != domain.BookingStatusCancelled {
			res = append(res, b)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].BookingTime < res[j].BookingTime })

	return res, nil
}

func (r *RedisStore) OccupiedTimes(ctx context.Context, date string) ([]string, error) {
	bookings, err := r.ListActiveByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	var res []string
	for _, b := range bookings {
		if b.BookingTime != "" {
			res = append(res, b.BookingTime)
		}
	}

	return res, nil
}

func (r *RedisStore) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	b.Status = status

	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal booking: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, bookingKey(id), raw, 0)
	if status == domain.BookingStatusCancelled && b.HasSlot() {
		// отмена освобождает слот
		pipe.Del(ctx, slotKey(b.BookingDate, b.BookingTime))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	return nil
}

func (r *RedisStore) loadMany(ctx context.Context, ids []string) ([]*domain.Booking, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = bookingKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	res := make([]*domain.Booking, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue // запись удалена между чтением индекса и MGET
		}
		b, err := unmarshalBooking([]byte(raw))
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, nil
}

func unmarshalBooking(raw []byte) (*domain.Booking, error) {
	var b domain.Booking
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("unmarshal booking: %w", err)
	}
	b.Persisted = true
	return &b, nil
}
