package model

import "time"

// BookingEntity represents the booking table entity. Records are write-once:
// status stays "Pending" and the delivery date is persisted at creation.
type BookingEntity struct {
	ID            uint64    `db:"id" json:"id"`
	UserID        uint64    `db:"user_id" json:"user_id"`
	CylinderType  string    `db:"cylinder_type" json:"cylinder_type"`
	PaymentMethod string    `db:"payment_method" json:"payment_method"`
	Status        string    `db:"status" json:"status"`
	BookingDate   time.Time `db:"booking_date" json:"booking_date"`
	DeliveryDate  time.Time `db:"delivery_date" json:"delivery_date"`
}

// BookingRequest for booking a cylinder
type BookingRequest struct {
	CylinderType  string `json:"cylinderType" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

// BookingDetail is the created-booking view with wire-formatted dates.
type BookingDetail struct {
	Type        string `json:"type"`
	Payment     string `json:"payment"`
	Date        string `json:"date"`
	DeliveredBy string `json:"deliveredBy"`
	Status      string `json:"status"`
}

type BookingResponse struct {
	Message string        `json:"message"`
	Booking BookingDetail `json:"booking"`
}

type BookingHistoryItem struct {
	ID          uint64 `json:"id"`
	Type        string `json:"type"`
	Payment     string `json:"payment"`
	Status      string `json:"status"`
	BookedOn    string `json:"bookedOn"`
	DeliveredBy string `json:"deliveredBy"`
}

type HistoryResponse struct {
	History []BookingHistoryItem `json:"history"`
}
