package recommendation

import (
	"database/sql"
	"fmt"

	"github.com/PaulElielk/Data-mining-Project/internal/catalog"
)

// defaultEdgeLimit caps the edge fetch when a descriptor leaves Limit unset.
const defaultEdgeLimit = 6

const defaultEdgeOrder = "confidence DESC, lift DESC"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListEdges(desc *catalog.RecommendationDescriptor, productID string) ([]Edge, error) {
	orderBy := desc.OrderBy
	if orderBy == "" {
		orderBy = defaultEdgeOrder
	}
	limit := desc.Limit
	if limit <= 0 {
		limit = defaultEdgeLimit
	}

	query := fmt.Sprintf(
		`SELECT %s::text AS recommended_id, support, confidence, lift FROM %s WHERE %s::text = $1 ORDER BY %s LIMIT $2`,
		desc.TargetColumn, desc.Table, desc.SourceColumn, orderBy,
	)

	rows, err := r.db.Query(query, productID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Edge, 0, limit)
	for rows.Next() {
		var (
			targetID   string
			support    sql.NullFloat64
			confidence sql.NullFloat64
			lift       sql.NullFloat64
		)
		if err := rows.Scan(&targetID, &support, &confidence, &lift); err != nil {
			return nil, err
		}
		out = append(out, Edge{
			TargetID:   targetID,
			Support:    nullableFloat(support),
			Confidence: nullableFloat(confidence),
			Lift:       nullableFloat(lift),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
