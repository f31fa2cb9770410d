package product

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/PaulElielk/Data-mining-Project/internal/catalog"
)

func jumiaDesc(t *testing.T) *catalog.Descriptor {
	t.Helper()
	desc, err := catalog.Default().Get("jumia")
	if err != nil {
		t.Fatalf("jumia descriptor missing: %v", err)
	}
	return desc
}

func TestList_UsesDescriptorOrdering(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"source_id", "brand_name", "product_name", "price", "discount", "reviews_rating", "reviews_count", "image_url"}).
		AddRow(1, "Acme", "Phone X", 150000, "10%", 4.5, 12, "https://img/1.jpg").
		AddRow(2, "Acme", "Phone Y", 90000, nil, nil, nil, nil)
	mock.ExpectQuery(`FROM jumia_products ORDER BY brand_name ASC, product_name ASC`).WillReturnRows(rows)

	out, err := repo.List(jumiaDesc(t))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 products, got %d", len(out))
	}
	if out[0].ID != "1" || out[0].Name != "Phone X" {
		t.Fatalf("unexpected first product %+v", out[0])
	}
	if out[1].Discount != nil {
		t.Fatalf("expected null discount, got %v", *out[1].Discount)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE jumia_product_id::text = $1`)).
		WithArgs("404").
		WillReturnRows(sqlmock.NewRows([]string{"source_id"}))

	_, err = repo.GetByID(jumiaDesc(t), "404")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByID_ComparesIDAsText(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"source_id", "product_name", "price"}).
		AddRow(int64(42), "Phone X", 150000)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE jumia_product_id::text = $1`)).
		WithArgs("42").
		WillReturnRows(rows)

	p, err := repo.GetByID(jumiaDesc(t), "42")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if p.ID != "42" || p.Price != 150000 {
		t.Fatalf("unexpected product %+v", p)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListByIDs_EmptyInputSkipsQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	out, err := repo.ListByIDs(jumiaDesc(t), nil)
	if err != nil {
		t.Fatalf("ListByIDs failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}

	// no query must have been issued
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected query issued: %v", err)
	}
}

func TestListByIDs_BatchedLookup(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"source_id", "product_name", "price"}).
		AddRow(7, "A", 10).
		AddRow(9, "B", 20)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE jumia_product_id::text = ANY($1::text[])`)).
		WillReturnRows(rows)

	out, err := repo.ListByIDs(jumiaDesc(t), []string{"7", "9"})
	if err != nil {
		t.Fatalf("ListByIDs failed: %v", err)
	}
	if len(out) != 2 || out[0].ID != "7" || out[1].ID != "9" {
		t.Fatalf("unexpected products %+v", out)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
