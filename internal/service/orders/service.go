package orders

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/partizan-booking/internal/infra/storage/booking"
	leadsRepo "github.com/m04kA/partizan-booking/internal/infra/storage/leads"
	"github.com/m04kA/partizan-booking/internal/service/orders/models"
)

// Service сервис заявок для бэк-офиса
type Service struct {
	bookingRepo BookingRepository
	leadsRepo   LeadsRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	bookingRepo BookingRepository,
	leadsRepo LeadsRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		leadsRepo:   leadsRepo,
		logger:      logger,
	}
}

// GetFullOrder получает полную заявку по ID
func (s *Service) GetFullOrder(ctx context.Context, id int64) (*models.FullOrderResponse, error) {
	s.logger.Info("GetFullOrder: fetching order id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetFullOrder: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetFullOrder: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetFullOrder - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListFullOrders получает полные заявки с фильтрацией
// - Processed: только обработанные / необработанные
// - StartDate, EndDate: период по дате праздника
func (s *Service) ListFullOrders(ctx context.Context, req *models.ListFullOrdersRequest) (*models.FullOrderListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListFullOrders: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListFullOrders: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListFullOrders - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListFullOrders: fetched %d orders", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ListQuickOrders получает быстрые заявки
func (s *Service) ListQuickOrders(ctx context.Context, req *models.ListLeadsRequest) (*models.QuickOrderListResponse, error) {
	list, err := s.leadsRepo.ListQuickOrders(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ListQuickOrders: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListQuickOrders - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListQuickOrders: fetched %d orders", len(list))
	return models.FromDomainQuickOrderList(list), nil
}

// ListTrainings получает записи на тренировки
func (s *Service) ListTrainings(ctx context.Context, req *models.ListLeadsRequest) (*models.TrainingListResponse, error) {
	list, err := s.leadsRepo.ListTrainings(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ListTrainings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTrainings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTrainings: fetched %d registrations", len(list))
	return models.FromDomainTrainingList(list), nil
}

// MarkProcessed помечает заявку указанного вида обработанной
// Других изменений заявки после создания нет
func (s *Service) MarkProcessed(ctx context.Context, kind models.Kind, id int64) error {
	s.logger.Info("MarkProcessed: kind=%s, id=%d", kind, id)

	var err error
	switch kind {
	case models.KindFull:
		err = s.bookingRepo.MarkProcessed(ctx, id)
	case models.KindQuick:
		err = s.leadsRepo.MarkQuickOrderProcessed(ctx, id)
	case models.KindTraining:
		err = s.leadsRepo.MarkTrainingProcessed(ctx, id)
	default:
		s.logger.Warn("MarkProcessed: unknown kind=%s", kind)
		return ErrUnknownKind
	}

	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) || errors.Is(err, leadsRepo.ErrLeadNotFound) {
			s.logger.Warn("MarkProcessed: %s id=%d not found", kind, id)
			return ErrOrderNotFound
		}
		s.logger.Error("MarkProcessed: repository error for %s id=%d: %v", kind, id, err)
		return fmt.Errorf("%w: MarkProcessed - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkProcessed: %s id=%d processed", kind, id)
	return nil
}
