package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/snsp-travel/travel-booking-service/internal/domain"
)

// PGBookingRepository stores bookings in Postgres via a pgx pool.
type PGBookingRepository struct {
	db *pgxpool.Pool
}

// NewPGBookingRepository creates a Postgres-backed booking store.
func NewPGBookingRepository(db *pgxpool.Pool) *PGBookingRepository {
	return &PGBookingRepository{db: db}
}

// EnsureSchema creates the bookings table if it does not exist.
func (r *PGBookingRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS bookings (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		origin TEXT NOT NULL DEFAULT '',
		destination TEXT NOT NULL DEFAULT '',
		departure_date TEXT NOT NULL DEFAULT '',
		return_date TEXT NOT NULL DEFAULT '',
		passengers TEXT NOT NULL DEFAULT '',
		class TEXT NOT NULL DEFAULT '',
		special_requests TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return fmt.Errorf("ensure bookings schema: %w", err)
	}
	return nil
}

// Add implements BookingRepository.
func (r *PGBookingRepository) Add(ctx context.Context, booking *domain.Booking) error {
	_, err := r.db.Exec(ctx, `INSERT INTO bookings
		(id, full_name, email, phone, origin, destination, departure_date, return_date, passengers, class, special_requests, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		booking.ID, booking.FullName, booking.Email, booking.Phone,
		booking.From, booking.To, booking.DepartureDate, booking.ReturnDate,
		booking.Passengers, booking.Class, booking.SpecialRequests, booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// List implements BookingRepository.
func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, full_name, email, phone, origin, destination,
		departure_date, return_date, passengers, class, special_requests, created_at
		FROM bookings ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.FullName, &b.Email, &b.Phone, &b.From, &b.To,
			&b.DepartureDate, &b.ReturnDate, &b.Passengers, &b.Class, &b.SpecialRequests, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// GetByID implements BookingRepository.
func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT id, full_name, email, phone, origin, destination,
		departure_date, return_date, passengers, class, special_requests, created_at
		FROM bookings WHERE id=$1`, id)

	var b domain.Booking
	err := row.Scan(&b.ID, &b.FullName, &b.Email, &b.Phone, &b.From, &b.To,
		&b.DepartureDate, &b.ReturnDate, &b.Passengers, &b.Class, &b.SpecialRequests, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
