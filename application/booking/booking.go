package booking

import (
	"context"
	"time"

	"github.com/muhammadheryan/gas-booking/cmd/config"
	"github.com/muhammadheryan/gas-booking/constant"
	"github.com/muhammadheryan/gas-booking/model"
	bookingrepo "github.com/muhammadheryan/gas-booking/repository/booking"
	"github.com/muhammadheryan/gas-booking/thirdparty/rabbitmq"
	"github.com/muhammadheryan/gas-booking/utils/errors"
	"github.com/muhammadheryan/gas-booking/utils/logger"
	"go.uber.org/zap"
)

type BookingApp interface {
	Book(ctx context.Context, userID uint64, req *model.BookingRequest) (*model.BookingResponse, error)
	History(ctx context.Context, userID uint64) (*model.HistoryResponse, error)
}

type bookingAppImpl struct {
	config      *config.Config
	bookingRepo bookingrepo.BookingRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingApp(config *config.Config, bookingRepo bookingrepo.BookingRepository, publisher *rabbitmq.Publisher) BookingApp {
	return &bookingAppImpl{config: config, bookingRepo: bookingRepo, publisher: publisher}
}

func (s *bookingAppImpl) Book(ctx context.Context, userID uint64, req *model.BookingRequest) (*model.BookingResponse, error) {
	if !constant.CylinderTypes[req.CylinderType] {
		return nil, errors.SetCustomError(constant.ErrInvalidCylinderType)
	}
	if !constant.PaymentMethods[req.PaymentMethod] {
		return nil, errors.SetCustomError(constant.ErrInvalidPaymentMethod)
	}

	// Delivery estimate is a fixed offset, persisted at creation and never
	// recalculated.
	bookingDate := time.Now()
	deliveryDate := bookingDate.AddDate(0, 0, constant.DeliveryOffsetDays)

	entity := &model.BookingEntity{
		UserID:        userID,
		CylinderType:  req.CylinderType,
		PaymentMethod: req.PaymentMethod,
		Status:        constant.BookingStatusPending,
		BookingDate:   bookingDate,
		DeliveryDate:  deliveryDate,
	}

	entity, err := s.bookingRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Book] err bookingRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Enqueue a delayed delivery reminder. The booking stands even when the
	// broker is down or not configured.
	if s.publisher != nil {
		msg := rabbitmq.DeliveryReminderMessage{
			BookingID:    entity.ID,
			UserID:       userID,
			CylinderType: entity.CylinderType,
			DeliverBy:    entity.DeliveryDate,
		}
		if err := s.publisher.PublishDeliveryReminder(msg); err != nil {
			logger.Error("[Book] publish delivery reminder", zap.String("error", err.Error()))
		}
	}

	return &model.BookingResponse{
		Message: "cylinder booked successfully",
		Booking: model.BookingDetail{
			Type:        entity.CylinderType,
			Payment:     entity.PaymentMethod,
			Date:        entity.BookingDate.Format(constant.DateLayout),
			DeliveredBy: entity.DeliveryDate.Format(constant.DateLayout),
			Status:      entity.Status,
		},
	}, nil
}

func (s *bookingAppImpl) History(ctx context.Context, userID uint64) (*model.HistoryResponse, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[History] err bookingRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	history := make([]model.BookingHistoryItem, 0, len(bookings))
	for _, b := range bookings {
		history = append(history, model.BookingHistoryItem{
			ID:          b.ID,
			Type:        b.CylinderType,
			Payment:     b.PaymentMethod,
			Status:      b.Status,
			BookedOn:    b.BookingDate.Format(constant.DateLayout),
			DeliveredBy: b.DeliveryDate.Format(constant.DateLayout),
		})
	}

	return &model.HistoryResponse{History: history}, nil
}
