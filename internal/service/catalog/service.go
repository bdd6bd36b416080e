package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/partizan-booking/internal/domain"
	catalogRepo "github.com/m04kA/partizan-booking/internal/infra/storage/catalog"
	"github.com/m04kA/partizan-booking/internal/service/catalog/models"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Service сервис каталога праздников
type Service struct {
	repo     Repository
	validate *validator.Validate
	logger   Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo Repository, logger Logger) *Service {
	v := validator.New()
	err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("catalog: register slug validation: %v", err))
	}

	return &Service{
		repo:     repo,
		validate: v,
		logger:   logger,
	}
}

// ListHolidays публичный список активных праздников
// category - slug категории (неизвестный slug -> ErrCategoryNotFound)
// age - возраст ребенка, попадающий в [min_age, max_age]
func (s *Service) ListHolidays(ctx context.Context, req *models.ListHolidaysRequest) (*models.HolidayListResponse, error) {
	s.logger.Info("ListHolidays: category=%q, age=%v", req.CategorySlug, req.Age)

	filter := domain.HolidaysFilter{OnlyActive: true}

	if req.Age != nil {
		if *req.Age < 0 || *req.Age > domain.MaxChildAge {
			return nil, fmt.Errorf("%w: age out of range", ErrInvalidInput)
		}
		filter.Age = req.Age
	}

	if slug := strings.TrimSpace(req.CategorySlug); slug != "" {
		category, err := s.repo.GetCategoryBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrCategoryNotFound) {
				s.logger.Warn("ListHolidays: category %q not found", slug)
				return nil, ErrCategoryNotFound
			}
			s.logger.Error("ListHolidays: failed to get category %q: %v", slug, err)
			return nil, fmt.Errorf("%w: ListHolidays - get category: %v", ErrInternal, err)
		}
		filter.CategoryID = &category.ID
	}

	holidays, err := s.repo.ListHolidays(ctx, filter)
	if err != nil {
		s.logger.Error("ListHolidays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHolidays - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHolidayList(holidays), nil
}

// ListAllHolidays все праздники для бэк-офиса, включая скрытые
func (s *Service) ListAllHolidays(ctx context.Context) (*models.HolidayListResponse, error) {
	holidays, err := s.repo.ListHolidays(ctx, domain.HolidaysFilter{})
	if err != nil {
		s.logger.Error("ListAllHolidays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAllHolidays - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainHolidayList(holidays), nil
}

// GetHoliday публичная карточка праздника; скрытый праздник не отдается
func (s *Service) GetHoliday(ctx context.Context, slug string) (*models.HolidayResponse, error) {
	holiday, err := s.repo.GetHolidayBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrHolidayNotFound) {
			s.logger.Warn("GetHoliday: holiday %q not found", slug)
			return nil, ErrHolidayNotFound
		}
		s.logger.Error("GetHoliday: repository error for %q: %v", slug, err)
		return nil, fmt.Errorf("%w: GetHoliday - repository error: %v", ErrInternal, err)
	}

	if !holiday.Active {
		s.logger.Warn("GetHoliday: holiday %q is inactive", slug)
		return nil, ErrHolidayNotFound
	}

	return models.FromDomainHoliday(holiday), nil
}

// ListCategories все категории
func (s *Service) ListCategories(ctx context.Context) ([]*models.CategoryResponse, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, models.FromDomainCategory(c))
	}
	return result, nil
}

// CreateCategory создает категорию
func (s *Service) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.CategoryResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("CreateCategory: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	category, err := s.repo.CreateCategory(ctx, &domain.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrDuplicateSlug) {
			s.logger.Warn("CreateCategory: slug %q already exists", req.Slug)
			return nil, ErrDuplicateSlug
		}
		s.logger.Error("CreateCategory: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCategory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCategory: created category id=%d, slug=%s", category.ID, category.Slug)
	return models.FromDomainCategory(category), nil
}

// CreateHoliday создает праздник
func (s *Service) CreateHoliday(ctx context.Context, req *models.CreateHolidayRequest) (*models.HolidayResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("CreateHoliday: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	holiday := req.ToDomain()
	if holiday.MinAge > holiday.MaxAge {
		s.logger.Warn("CreateHoliday: min_age=%d > max_age=%d", holiday.MinAge, holiday.MaxAge)
		return nil, fmt.Errorf("%w: min age is greater than max age", ErrInvalidInput)
	}

	created, err := s.repo.CreateHoliday(ctx, holiday)
	if err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrDuplicateSlug):
			s.logger.Warn("CreateHoliday: slug %q already exists", req.Slug)
			return nil, ErrDuplicateSlug
		case errors.Is(err, catalogRepo.ErrCategoryNotFound):
			s.logger.Warn("CreateHoliday: category id=%d not found", req.CategoryID)
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("CreateHoliday: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateHoliday: created holiday id=%d, slug=%s", created.ID, created.Slug)
	return models.FromDomainHoliday(created), nil
}

// SetHolidayActive показывает или скрывает праздник, история заявок сохраняется
func (s *Service) SetHolidayActive(ctx context.Context, id int64, active bool) error {
	if err := s.repo.SetHolidayActive(ctx, id, active); err != nil {
		if errors.Is(err, catalogRepo.ErrHolidayNotFound) {
			s.logger.Warn("SetHolidayActive: holiday id=%d not found", id)
			return ErrHolidayNotFound
		}
		s.logger.Error("SetHolidayActive: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: SetHolidayActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetHolidayActive: holiday id=%d active=%t", id, active)
	return nil
}
