package product

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/PaulElielk/Data-mining-Project/internal/catalog"
)

// PostgresRepository builds and executes the per-category queries described
// by a catalog descriptor. The id column is always compared as text so
// numeric and string key columns behave identically.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(desc *catalog.Descriptor) ([]catalog.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, selectList(desc), desc.Table)
	if desc.OrderBy != "" {
		query += ` ORDER BY ` + desc.OrderBy
	}

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return projectRows(rows, desc)
}

func (r *PostgresRepository) GetByID(desc *catalog.Descriptor, id string) (catalog.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s::text = $1`, selectList(desc), desc.Table, desc.IDColumn)

	rows, err := r.db.Query(query, id)
	if err != nil {
		return catalog.Product{}, err
	}
	defer rows.Close()

	out, err := projectRows(rows, desc)
	if err != nil {
		return catalog.Product{}, err
	}
	if len(out) == 0 {
		return catalog.Product{}, ErrNotFound
	}
	return out[0], nil
}

func (r *PostgresRepository) ListByIDs(desc *catalog.Descriptor, ids []string) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s::text = ANY($1::text[])`, selectList(desc), desc.Table, desc.IDColumn)

	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return projectRows(rows, desc)
}

func selectList(desc *catalog.Descriptor) string {
	return strings.Join(desc.SelectColumns, ", ")
}

// projectRows scans every row into a catalog.Row keyed by result column name
// and applies the descriptor's projection.
func projectRows(rows *sql.Rows, desc *catalog.Descriptor) ([]catalog.Product, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := make([]catalog.Product, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(catalog.Row, len(cols))
		for i, col := range cols {
			// copy []byte out of the driver's reusable buffer
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		out = append(out, desc.MapRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
