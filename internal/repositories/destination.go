package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-travel-planner/internal/models"
)

// DestinationReadRepository reads destination rankings
type DestinationReadRepository struct {
	db *sqlx.DB
}

func NewDestinationReadRepository(db *sqlx.DB) *DestinationReadRepository {
	return &DestinationReadRepository{db: db}
}

// GetPopular returns up to limit destinations ordered by how many trips visit them.
func (r *DestinationReadRepository) GetPopular(ctx context.Context, limit int) ([]models.Destination, error) {
	const query = `
		SELECT id, name, country, description, image_url, trip_count
		FROM popular_destinations
		ORDER BY trip_count DESC, name
		LIMIT $1
	`

	destinations := []models.Destination{}
	err := r.db.SelectContext(ctx, &destinations, query, limit)

	logQuery(query, []any{limit}, len(destinations), err)

	if err != nil {
		return nil, err
	}
	return destinations, nil
}
