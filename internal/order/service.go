package order

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shadow2411/psfoundation/internal/pricing"
)

var (
	ErrOrderNotFound   = errors.New("tiffin order not found")
	ErrNameTooShort    = errors.New("name must be at least 2 characters")
	ErrInvalidMobile   = errors.New("mobile number must be 10 digits")
	ErrVillageRequired = errors.New("village is required")
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

type Service struct {
	repo  Repository
	rates *pricing.RateCard
}

func NewService(repo Repository, rates *pricing.RateCard) *Service {
	return &Service{
		repo:  repo,
		rates: rates,
	}
}

// --------------------------------------------------
// Register a subscription
// --------------------------------------------------
func (s *Service) Register(
	ctx context.Context,
	name string,
	mobileNumber string,
	region string,
	village string,
	fromDate time.Time,
	tillDate time.Time,
	lunchCount int,
	dinnerCount int,
) (*Order, error) {

	if len(strings.TrimSpace(name)) < 2 {
		return nil, ErrNameTooShort
	}
	if !mobilePattern.MatchString(mobileNumber) {
		return nil, ErrInvalidMobile
	}
	if strings.TrimSpace(village) == "" {
		return nil, ErrVillageRequired
	}
	if lunchCount < 0 || dinnerCount < 0 {
		return nil, pricing.ErrNegativeCount
	}

	from, till := NormalizeWindow(fromDate, tillDate)
	if till.Before(from) {
		return nil, pricing.ErrInvalidWindow
	}

	// Unknown region surfaces here as a validation error, before any insert.
	totalBill, err := s.rates.ComputeTotal(region, from, till, lunchCount, dinnerCount)
	if err != nil {
		return nil, err
	}

	order := &Order{
		Name:          strings.TrimSpace(name),
		MobileNumber:  mobileNumber,
		Region:        region,
		Village:       strings.TrimSpace(village),
		FromDate:      from,
		TillDate:      till,
		LunchCount:    lunchCount,
		DinnerCount:   dinnerCount,
		TotalBill:     totalBill,
		PaymentStatus: PaymentPending,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// --------------------------------------------------
// Today's deliveries for a meal
// --------------------------------------------------
func (s *Service) ListActive(ctx context.Context, meal Meal) ([]*Order, error) {
	if _, err := ParseMeal(string(meal)); err != nil {
		return nil, err
	}
	return s.repo.FindActive(ctx, meal, time.Now())
}

// --------------------------------------------------
// All orders, most recently started first
// --------------------------------------------------
func (s *Service) ListAll(ctx context.Context) ([]*Order, error) {
	return s.repo.ListAll(ctx)
}

// --------------------------------------------------
// Mark payment received
// --------------------------------------------------
func (s *Service) MarkPaid(ctx context.Context, id string) (*Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrOrderNotFound
	}

	// A blind flip to received is safe to repeat: a second call is a
	// no-op success, never an error.
	return s.repo.UpdatePaymentStatus(ctx, id, PaymentReceived)
}
