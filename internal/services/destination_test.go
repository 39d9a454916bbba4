package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-travel-planner/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinationService_Popular(t *testing.T) {
	ctx := context.Background()
	list := []models.Destination{{ID: 1, Name: "Paris", Country: "France", TripCount: 5}}

	tests := []struct {
		name    string
		setup   func(reader *MockDestinationReader, cache *MockDestinationCache)
		want    []models.Destination
		wantErr string
	}{
		{
			name: "cache hit",
			setup: func(reader *MockDestinationReader, cache *MockDestinationCache) {
				cache.EXPECT().GetPopular(gomock.Any()).Return(list, nil)
			},
			want: list,
		},
		{
			name: "cache miss fills cache",
			setup: func(reader *MockDestinationReader, cache *MockDestinationCache) {
				cache.EXPECT().GetPopular(gomock.Any()).Return(nil, models.ErrNotFound)
				reader.EXPECT().GetPopular(gomock.Any(), PopularDestinationsLimit).Return(list, nil)
				cache.EXPECT().SetPopular(gomock.Any(), list).Return(nil)
			},
			want: list,
		},
		{
			name: "cache failures fall back to database",
			setup: func(reader *MockDestinationReader, cache *MockDestinationCache) {
				cache.EXPECT().GetPopular(gomock.Any()).Return(nil, errors.New("redis down"))
				reader.EXPECT().GetPopular(gomock.Any(), PopularDestinationsLimit).Return(list, nil)
				cache.EXPECT().SetPopular(gomock.Any(), list).Return(errors.New("redis down"))
			},
			want: list,
		},
		{
			name: "database error",
			setup: func(reader *MockDestinationReader, cache *MockDestinationCache) {
				cache.EXPECT().GetPopular(gomock.Any()).Return(nil, models.ErrNotFound)
				reader.EXPECT().GetPopular(gomock.Any(), PopularDestinationsLimit).Return(nil, errors.New("db error"))
			},
			wantErr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockDestinationReader(ctrl)
			cache := NewMockDestinationCache(ctrl)
			tt.setup(reader, cache)

			got, err := NewDestinationService(reader, cache).Popular(ctx)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDestinationService_Popular_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockDestinationReader(ctrl)
	reader.EXPECT().GetPopular(gomock.Any(), PopularDestinationsLimit).Return([]models.Destination{}, nil)

	got, err := NewDestinationService(reader, nil).Popular(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
