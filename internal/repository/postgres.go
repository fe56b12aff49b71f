package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// PostgresStore — основное хранилище заявок. Уникальность слота
// обеспечивает частичный индекс uq_bookings_slot (status <> 'cancelled').
type PostgresStore struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPostgresStore(db *dbpg.DB) *PostgresStore {
	return &PostgresStore{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `id, name, phone, car_brand, car_model, reason, status,
		to_char(booking_date, 'YYYY-MM-DD'), to_char(booking_time, 'HH24:MI'),
		chat_id, platform, created_at`

func (r *PostgresStore) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO car_bookings
			  (id, name, phone, car_brand, car_model, reason, status, booking_date, booking_time, chat_id, platform, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.Name, b.Phone, b.CarBrand, b.CarModel, b.Reason, b.Status,
		nullStr(b.BookingDate), nullStr(b.BookingTime), b.ChatID, nullStr(b.Platform), b.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *PostgresStore) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM car_bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *PostgresStore) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM car_bookings
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *PostgresStore) ListActiveByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM car_bookings
			  WHERE booking_date = $1 AND status <> $2
			  ORDER BY booking_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, domain.BookingStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("list bookings by date: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking by date: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *PostgresStore) OccupiedTimes(ctx context.Context, date string) ([]string, error) {
	query := `SELECT to_char(booking_time, 'HH24:MI')
			  FROM car_bookings
			  WHERE booking_date = $1 AND booking_time IS NOT NULL AND status <> $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, domain.BookingStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("occupied times: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var t string
		if err = rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan occupied time: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func (r *PostgresStore) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE car_bookings SET status = $1 WHERE id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, status, id)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("status rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var (
		b        domain.Booking
		date     sql.NullString
		bTime    sql.NullString
		chatID   sql.NullInt64
		platform sql.NullString
	)
	if err := scan(
		&b.ID, &b.Name, &b.Phone, &b.CarBrand, &b.CarModel, &b.Reason, &b.Status,
		&date, &bTime, &chatID, &platform, &b.CreatedAt,
	); err != nil {
		return nil, err
	}

	b.BookingDate = date.String
	b.BookingTime = bTime.String
	b.Platform = platform.String
	if chatID.Valid {
		id := chatID.Int64
		b.ChatID = &id
	}
	b.Persisted = true

	return &b, nil
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
