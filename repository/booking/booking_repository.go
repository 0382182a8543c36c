package booking

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/gas-booking/model"
)

type SQL struct {
	conn *sqlx.DB
}

type BookingRepository interface {
	Create(ctx context.Context, req *model.BookingEntity) (*model.BookingEntity, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.BookingEntity, error)
}

func NewBookingRepository(conn *sqlx.DB) BookingRepository {
	return &SQL{conn: conn}
}

const (
	insertBookingQuery = `INSERT INTO booking (user_id, cylinder_type, payment_method, status, booking_date, delivery_date) VALUES (?, ?, ?, ?, ?, ?)`

	// Most recent booking first.
	listBookingsQuery = `SELECT id, user_id, cylinder_type, payment_method, status, booking_date, delivery_date FROM booking WHERE user_id = ? ORDER BY booking_date DESC`
)

func (s *SQL) Create(ctx context.Context, data *model.BookingEntity) (*model.BookingEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertBookingQuery,
		data.UserID, data.CylinderType, data.PaymentMethod, data.Status, data.BookingDate, data.DeliveryDate)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.BookingEntity, error) {
	bookings := make([]model.BookingEntity, 0)
	if err := s.conn.SelectContext(ctx, &bookings, listBookingsQuery, userID); err != nil {
		return nil, err
	}
	return bookings, nil
}
