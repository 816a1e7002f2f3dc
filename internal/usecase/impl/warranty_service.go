package impl

import (
	"context"
	"strings"
	"unicode"

	"warranty/internal/domain/entity"
	domainerrors "warranty/internal/domain/errors"
	"warranty/internal/domain/repository"
	"warranty/internal/domain/service"
	"warranty/internal/errors"
	"warranty/internal/usecase"

	"github.com/google/uuid"
)

type warrantyService struct {
	warrantyRepo repository.WarrantyRepository
	calendar     service.Calendar
	newID        func() (string, error)
}

// NewWarrantyService creates a new warranty service instance
func NewWarrantyService(warrantyRepo repository.WarrantyRepository, calendar service.Calendar) usecase.WarrantyUsecase {
	return &warrantyService{
		warrantyRepo: warrantyRepo,
		calendar:     calendar,
		newID:        newWarrantyID,
	}
}

// newWarrantyID returns a time-ordered UUIDv7, so ids sort in creation order.
func newWarrantyID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate warranty id")
	}

	return id.String(), nil
}

// Create stores a new warranty under a fresh id
func (s *warrantyService) Create(ctx context.Context, input *usecase.WarrantyInput) (*usecase.WarrantyView, error) {
	id, err := s.newID()
	if err != nil {
		return nil, err
	}

	w := buildWarranty(id, input)
	if err := s.warrantyRepo.Create(ctx, w); err != nil {
		if errors.Is(err, repository.ErrDuplicateWarranty) {
			return nil, domainerrors.ErrInternalError.WrapMessage("generated warranty id already exists")
		}

		return nil, errors.Wrap(err, "failed to create warranty")
	}

	return newWarrantyView(w, s.calendar.Today()), nil
}

// Update replaces the content of an existing warranty, keeping its id
func (s *warrantyService) Update(ctx context.Context, id string, input *usecase.WarrantyInput) (*usecase.WarrantyView, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domainerrors.ErrWarrantyNotFound
	}

	w := buildWarranty(id, input)
	if err := s.warrantyRepo.Update(ctx, w); err != nil {
		if errors.Is(err, repository.ErrWarrantyNotFound) {
			return nil, domainerrors.ErrWarrantyNotFound
		}

		return nil, errors.Wrap(err, "failed to update warranty")
	}

	return newWarrantyView(w, s.calendar.Today()), nil
}

// Delete removes a warranty. It refuses unless confirmed is true.
func (s *warrantyService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domainerrors.ErrDeleteNotConfirmed
	}

	if err := s.warrantyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrWarrantyNotFound) {
			return domainerrors.ErrWarrantyNotFound
		}

		return errors.Wrap(err, "failed to delete warranty")
	}

	return nil
}

// Get retrieves one warranty with its computed status
func (s *warrantyService) Get(ctx context.Context, id string) (*usecase.WarrantyView, error) {
	w, err := findWarranty(ctx, s.warrantyRepo, id)
	if err != nil {
		return nil, err
	}

	return newWarrantyView(w, s.calendar.Today()), nil
}

// List returns the warranties matching query in entry order
func (s *warrantyService) List(ctx context.Context, query usecase.WarrantyQuery) ([]*usecase.WarrantyView, error) {
	warranties, err := s.warrantyRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list warranties")
	}

	today := s.calendar.Today()
	matcher := newSearchMatcher(query.Search)

	views := make([]*usecase.WarrantyView, 0, len(warranties))
	for _, w := range warranties {
		if !matcher.matches(w) {
			continue
		}

		view := newWarrantyView(w, today)
		if query.Status != "" && view.Status.Code != query.Status {
			continue
		}
		views = append(views, view)
	}

	return views, nil
}

// findWarranty loads one warranty and maps the repository miss to the domain error.
func findWarranty(ctx context.Context, repo repository.WarrantyRepository, id string) (*entity.Warranty, error) {
	w, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWarrantyNotFound) {
			return nil, domainerrors.ErrWarrantyNotFound
		}

		return nil, errors.Wrap(err, "failed to find warranty")
	}

	return w, nil
}

// buildWarranty turns form input into a record, applying the editing rules:
// no supply means no products, products imply supply, and no installation
// means no install date.
func buildWarranty(id string, input *usecase.WarrantyInput) *entity.Warranty {
	w := &entity.Warranty{
		ID:                         id,
		CustomerName:               strings.TrimSpace(input.CustomerName),
		PhoneNumber:                strings.TrimSpace(input.PhoneNumber),
		Email:                      strings.TrimSpace(input.Email),
		Products:                   make([]entity.Product, 0, len(input.Products)),
		ServicesProvided:           input.ServicesProvided,
		InstallDate:                strings.TrimSpace(input.InstallDate),
		InstallationWarrantyPeriod: input.InstallationWarrantyPeriod,
		InstallationWarrantyUnit:   entity.PeriodUnit(input.InstallationWarrantyUnit).OrDefault(),
		Postcode:                   strings.TrimSpace(input.Postcode),
		District:                   strings.TrimSpace(input.District),
		State:                      strings.TrimSpace(input.State),
		BuildingType:               entity.BuildingType(input.BuildingType).Normalize(),
		OtherBuildingType:          strings.TrimSpace(input.OtherBuildingType),
	}

	if w.ServicesProvided.Supply {
		for _, p := range input.Products {
			w.Products = append(w.Products, entity.Product{
				ProductName:           strings.TrimSpace(p.ProductName),
				SerialNumber:          strings.TrimSpace(p.SerialNumber),
				PurchaseDate:          strings.TrimSpace(p.PurchaseDate),
				ProductWarrantyPeriod: p.ProductWarrantyPeriod,
				ProductWarrantyUnit:   entity.PeriodUnit(p.ProductWarrantyUnit).OrDefault(),
			})
		}
	}
	if len(w.Products) > 0 {
		w.ServicesProvided.Supply = true
	}

	if !w.ServicesProvided.Install {
		w.InstallDate = ""
	}

	return w
}

// searchMatcher matches warranties against a free-text search.
type searchMatcher struct {
	term   string
	digits string
}

func newSearchMatcher(search string) searchMatcher {
	term := strings.ToLower(strings.TrimSpace(search))

	return searchMatcher{term: term, digits: digitsOf(term)}
}

func (m searchMatcher) matches(w *entity.Warranty) bool {
	if m.term == "" {
		return true
	}

	fields := []string{w.CustomerName, w.PhoneNumber, w.Email, w.Postcode, w.District, w.State}
	for _, p := range w.Products {
		fields = append(fields, p.ProductName, p.SerialNumber)
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), m.term) {
			return true
		}
	}

	// "0123456789" finds a number stored as "012-345 6789".
	if m.digits != "" && len(m.digits) == len(m.term) {
		return strings.Contains(digitsOf(w.PhoneNumber), m.digits)
	}

	return false
}

func digitsOf(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}

		return -1
	}, s)
}
