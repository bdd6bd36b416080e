package leads

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/m04kA/partizan-booking/internal/infra/storage/catalog"
	leadsRepo "github.com/m04kA/partizan-booking/internal/infra/storage/leads"
	"github.com/m04kA/partizan-booking/internal/service/leads/models"
)

// Виды лидов для метрик
const (
	kindQuickOrder = "quick_order"
	kindTraining   = "training"
)

// Service сервис лидов: заявки без слота и без ограничения по емкости
type Service struct {
	leadsRepo   LeadsRepository
	holidayRepo HolidayRepository
	recorder    Recorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса лидов
func NewService(
	leadsRepo LeadsRepository,
	holidayRepo HolidayRepository,
	recorder Recorder,
	logger Logger,
) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		leadsRepo:   leadsRepo,
		holidayRepo: holidayRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

// CreateQuickOrder сохраняет быструю заявку
func (s *Service) CreateQuickOrder(ctx context.Context, req *models.QuickOrderRequest) (*models.LeadResponse, error) {
	// 1. Проверка полей
	order, err := parseQuickOrder(req)
	if err != nil {
		s.logger.Warn("CreateQuickOrder: validation failed: %v", err)
		return nil, err
	}
	holidayID := order.HolidayID

	// 2. Праздник существует и активен
	holiday, err := s.holidayRepo.GetHolidayByID(ctx, holidayID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrHolidayNotFound) {
			s.logger.Warn("CreateQuickOrder: holiday id=%d not found", holidayID)
			return nil, ErrHolidayNotFound
		}
		s.logger.Error("CreateQuickOrder: failed to get holiday id=%d: %v", holidayID, err)
		return nil, fmt.Errorf("%w: CreateQuickOrder - get holiday: %v", ErrInternal, err)
	}
	if !holiday.Active {
		s.logger.Warn("CreateQuickOrder: holiday id=%d is inactive", holidayID)
		return nil, ErrHolidayNotFound
	}

	// 3. Сохраняем
	order, err = s.leadsRepo.CreateQuickOrder(ctx, order)
	if err != nil {
		if errors.Is(err, leadsRepo.ErrHolidayNotFound) {
			return nil, ErrHolidayNotFound
		}
		s.logger.Error("CreateQuickOrder: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateQuickOrder - repository error: %v", ErrInternal, err)
	}

	s.recorder.LeadCreated(kindQuickOrder)
	s.logger.Info("CreateQuickOrder: created quick order id=%d for holiday id=%d", order.ID, holidayID)
	return &models.LeadResponse{ID: order.ID, CreatedAt: order.CreatedAt}, nil
}

// RegisterTraining сохраняет запись на тренировку
func (s *Service) RegisterTraining(ctx context.Context, req *models.TrainingRequest) (*models.LeadResponse, error) {
	// 1. Проверка полей: все, кроме типа посещения, обязательны
	reg, err := parseTraining(req)
	if err != nil {
		s.logger.Warn("RegisterTraining: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем
	created, err := s.leadsRepo.CreateTraining(ctx, reg)
	if err != nil {
		s.logger.Error("RegisterTraining: repository error: %v", err)
		return nil, fmt.Errorf("%w: RegisterTraining - repository error: %v", ErrInternal, err)
	}

	s.recorder.LeadCreated(kindTraining)
	s.logger.Info("RegisterTraining: created registration id=%d, group=%s, visit=%s",
		created.ID, created.AgeGroup, created.VisitType)
	return &models.LeadResponse{ID: created.ID, CreatedAt: created.CreatedAt}, nil
}
