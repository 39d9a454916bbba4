package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-travel-planner/internal/logger"
	"github.com/sbilibin2017/gw-travel-planner/internal/models"
)

//go:generate mockgen -source=trip.go -destination=mock_trip.go -package=services

// ErrTripNotFound is returned when a trip does not exist or belongs to someone else.
var ErrTripNotFound = errors.New("trip not found")

var currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)

// Limits of the trips schema.
const (
	maxTripTitleLen     = 200
	maxTripBudgetCents  = 999_999_999_999 // NUMERIC(12,2)
	maxTripDestinations = 20
)

// TripReader defines read-only operations for trips.
type TripReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TripDB, error)
	GetByID(ctx context.Context, userID, tripID uuid.UUID) (*models.TripDB, error)
}

// TripWriter defines write operations for trips.
type TripWriter interface {
	Save(ctx context.Context, trip *models.TripDB) error
}

// TripService manages trips owned by authenticated users.
// Every method is scoped to the userID passed by the caller.
type TripService struct {
	reader      TripReader
	writer      TripWriter
	kafkaWriter KafkaWriter
	afterCommit func(ctx context.Context, fn func())
	now         func() time.Time
}

// NewTripService creates a new TripService. kafkaWriter may be nil.
// afterCommit defers side effects until the surrounding transaction commits;
// nil runs them right away.
func NewTripService(
	reader TripReader,
	writer TripWriter,
	kafkaWriter KafkaWriter,
	afterCommit func(ctx context.Context, fn func()),
) *TripService {
	if afterCommit == nil {
		afterCommit = func(_ context.Context, fn func()) { fn() }
	}
	return &TripService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		afterCommit: afterCommit,
		now:         time.Now,
	}
}

// List returns the user's trips, newest first.
func (s *TripService) List(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error) {
	records, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list trips", "userID", userID, "error", err)
		return nil, err
	}

	now := s.now()
	trips := make([]*models.Trip, 0, len(records))
	for i := range records {
		trips = append(trips, records[i].View(now))
	}
	return trips, nil
}

// Get returns a single trip of the user.
func (s *TripService) Get(ctx context.Context, userID, tripID uuid.UUID) (*models.Trip, error) {
	record, err := s.reader.GetByID(ctx, userID, tripID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		logger.Log.Errorw("failed to get trip", "userID", userID, "tripID", tripID, "error", err)
		return nil, err
	}
	return record.View(s.now()), nil
}

// Create validates req and stores a new trip for the user.
func (s *TripService) Create(ctx context.Context, userID uuid.UUID, req models.CreateTripRequest) (*models.Trip, error) {
	record, err := newTripRecord(userID, req)
	if err != nil {
		return nil, err
	}

	if err := s.writer.Save(ctx, record); err != nil {
		if errors.Is(err, models.ErrReferenceNotFound) {
			return nil, fmt.Errorf("%w: unknown destination", ErrValidation)
		}
		logger.Log.Errorw("failed to save trip", "userID", userID, "error", err)
		return nil, err
	}

	now := s.now()
	event := newEvent(models.EventTripCreated, userID, record.TripID.String(), now)
	s.afterCommit(ctx, func() { publishEvent(ctx, s.kafkaWriter, event) })

	return record.View(now), nil
}

// newTripRecord validates the request and converts it into a record.
func newTripRecord(userID uuid.UUID, req models.CreateTripRequest) (*models.TripDB, error) {
	title := strings.TrimSpace(req.Title)
	startRaw := strings.TrimSpace(req.StartDate)
	endRaw := strings.TrimSpace(req.EndDate)

	if title == "" || startRaw == "" || endRaw == "" {
		return nil, fmt.Errorf("%w: title, start date, and end date are required", ErrValidation)
	}
	if utf8.RuneCountInString(title) > maxTripTitleLen {
		return nil, fmt.Errorf("%w: title must be at most %d characters", ErrValidation, maxTripTitleLen)
	}

	start, err := time.Parse(models.DateLayout, startRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate must be formatted as YYYY-MM-DD", ErrValidation)
	}
	end, err := time.Parse(models.DateLayout, endRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: endDate must be formatted as YYYY-MM-DD", ErrValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrValidation)
	}

	if req.TotalBudget != nil {
		if *req.TotalBudget < 0 {
			return nil, fmt.Errorf("%w: totalBudget must not be negative", ErrValidation)
		}
		if math.Round(*req.TotalBudget*100) > maxTripBudgetCents {
			return nil, fmt.Errorf("%w: totalBudget is too large", ErrValidation)
		}
	}

	destinationIDs, err := normalizeDestinationIDs(req.DestinationIDs)
	if err != nil {
		return nil, err
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = models.DefaultCurrency
	}
	if !currencyRe.MatchString(currency) {
		return nil, fmt.Errorf("%w: currency must be a 3-letter code", ErrValidation)
	}

	var description *string
	if req.Description != nil {
		if d := strings.TrimSpace(*req.Description); d != "" {
			description = &d
		}
	}

	return &models.TripDB{
		TripID:      uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		StartDate:   start,
		EndDate:     end,
		TotalBudget: req.TotalBudget,
		Currency:    currency,

		DestinationIDs: destinationIDs,
	}, nil
}

// normalizeDestinationIDs drops duplicates while keeping the submitted order.
func normalizeDestinationIDs(ids []int64) ([]int64, error) {
	if len(ids) > maxTripDestinations {
		return nil, fmt.Errorf("%w: at most %d destinations per trip", ErrValidation, maxTripDestinations)
	}
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("%w: unknown destination", ErrValidation)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
