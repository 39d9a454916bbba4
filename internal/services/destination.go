package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-travel-planner/internal/logger"
	"github.com/sbilibin2017/gw-travel-planner/internal/models"
)

//go:generate mockgen -source=destination.go -destination=mock_destination.go -package=services

// PopularDestinationsLimit caps the popular destinations list.
const PopularDestinationsLimit = 10

// DestinationReader reads destination rankings from the database.
type DestinationReader interface {
	GetPopular(ctx context.Context, limit int) ([]models.Destination, error)
}

// DestinationCache caches the popular destinations list.
type DestinationCache interface {
	GetPopular(ctx context.Context) ([]models.Destination, error)
	SetPopular(ctx context.Context, destinations []models.Destination) error
}

// DestinationService serves the public destination catalogue.
type DestinationService struct {
	reader DestinationReader
	cache  DestinationCache
}

// NewDestinationService creates a new DestinationService. cache may be nil.
func NewDestinationService(reader DestinationReader, cache DestinationCache) *DestinationService {
	return &DestinationService{reader: reader, cache: cache}
}

// Popular returns the most visited destinations, from cache when possible.
func (s *DestinationService) Popular(ctx context.Context) ([]models.Destination, error) {
	if s.cache != nil {
		destinations, err := s.cache.GetPopular(ctx)
		if err == nil {
			return destinations, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			logger.Log.Warnw("failed to read popular destinations from cache", "error", err)
		}
	}

	destinations, err := s.reader.GetPopular(ctx, PopularDestinationsLimit)
	if err != nil {
		logger.Log.Errorw("failed to get popular destinations", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetPopular(ctx, destinations); err != nil {
			logger.Log.Warnw("failed to cache popular destinations", "error", err)
		}
	}

	return destinations, nil
}
