package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/pkg/idx"
	"github.com/Amit01999/fly8-admin-all/pkg/slogx"
)

func ptr[T any](v T) *T { return &v }

// DefaultServices is the catalog a fresh deployment starts with.
var DefaultServices = []domain.Service{
	{
		Name:              "University Application",
		Description:       "Complete assistance with university applications",
		Category:          "education",
		EstimatedDuration: ptr("2-4 weeks"),
		Icon:              ptr("GraduationCap"),
	},
	{
		Name:              "Student Visa",
		Description:       "Visa application support and guidance",
		Category:          "visa",
		EstimatedDuration: ptr("4-8 weeks"),
		Icon:              ptr("FileText"),
	},
	{
		Name:              "Accommodation",
		Description:       "Help finding suitable student accommodation",
		Category:          "housing",
		EstimatedDuration: ptr("1-2 weeks"),
		Icon:              ptr("Home"),
	},
	{
		Name:              "Education Loan",
		Description:       "Assistance with education loan applications",
		Category:          "finance",
		EstimatedDuration: ptr("2-3 weeks"),
		Icon:              ptr("DollarSign"),
	},
	{
		Name:              "Travel Booking",
		Description:       "Flight and travel arrangement assistance",
		Category:          "travel",
		EstimatedDuration: ptr("1 week"),
		Icon:              ptr("Plane"),
	},
	{
		Name:              "Insurance",
		Description:       "Health and travel insurance guidance",
		Category:          "insurance",
		EstimatedDuration: ptr("1 week"),
		Icon:              ptr("Shield"),
	},
}

type CatalogService struct {
	Store store.Store
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Service, error) {
	return s.Store.Services().ListServices(ctx)
}

// SeedDefaults fills an empty catalog with DefaultServices and returns how
// many entries it wrote. A non-empty catalog is left alone.
func (s *CatalogService) SeedDefaults(ctx context.Context) (int, error) {
	services := s.Store.Services()

	empty, err := services.IsEmpty(ctx)
	if err != nil || !empty {
		return 0, err
	}

	// spaced out so list order matches the declared order
	base := time.Now().UTC().Truncate(time.Millisecond)
	n := 0
	for i, svc := range DefaultServices {
		svc.ID = idx.New().String()
		svc.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)

		if err := services.CreateService(ctx, svc); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				continue
			}
			return n, err
		}
		n++
	}

	slogx.FromContext(ctx).Info("seeded service catalog", slog.Int("services", n))
	return n, nil
}
