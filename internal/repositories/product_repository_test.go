package repository_test

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mahawer/mahawer-api/internal/models"
	repository "github.com/mahawer/mahawer-api/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRepo(t *testing.T) (repository.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repository.NewProductRepo(db), mock
}

var productColumns = []string{
	"id", "category_id", "name_ar", "name_en", "description_ar", "description_en",
	"images", "specifications", "is_active", "is_cash_import", "has_custom_specs", "created_at", "updated_at",
	"c_id", "c_name_ar", "c_name_en", "c_emoji", "c_description", "c_is_active", "c_created_at", "c_updated_at",
}

func productRow(rows *sqlmock.Rows, id, categoryID uuid.UUID, nameAr string, now time.Time) *sqlmock.Rows {
	return rows.AddRow(
		id, categoryID, nameAr, "Product", "", "",
		"{}", "{}", true, false, false, now, now,
		categoryID, "مواد عازلة", "Insulation Materials", "", "", true, now, now,
	)
}

func TestProductListPublic(t *testing.T) {
	repo, mock := newProductRepo(t)
	ctx := t.Context()
	now := time.Now()

	t.Run("Success - Search And Pagination", func(t *testing.T) {
		categoryID := uuid.New()
		filter := &models.ProductFilter{Search: "صوف", Page: 3, Limit: 10}

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products p WHERE p.is_active = TRUE AND (p.name_ar ILIKE $1 OR p.name_en ILIKE $1 OR p.description_ar ILIKE $1 OR p.description_en ILIKE $1)`)).
			WithArgs("%صوف%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

		rows := sqlmock.NewRows(productColumns)
		for range 5 {
			rows = productRow(rows, uuid.New(), categoryID, "صوف صخري", now)
		}

		mock.ExpectQuery(`ORDER BY p\.created_at DESC LIMIT \$2 OFFSET \$3`).
			WithArgs("%صوف%", 10, 20).
			WillReturnRows(rows)

		products, total, err := repo.ListPublic(ctx, filter)

		require.NoError(t, err)
		assert.Equal(t, 25, total)
		require.Len(t, products, 5, "page 3 of 25 rows at limit 10 holds the last 5")
		assert.Equal(t, "صوف صخري", products[0].NameAr)
		require.NotNil(t, products[0].Category)
		assert.Equal(t, "مواد عازلة", products[0].Category.NameAr)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Category Filter", func(t *testing.T) {
		categoryID := uuid.New()
		filter := &models.ProductFilter{CategoryID: &categoryID, Page: 1, Limit: 20}

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products p WHERE p.is_active = TRUE AND p.category_id = $1`)).
			WithArgs(categoryID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		mock.ExpectQuery(`LIMIT \$2 OFFSET \$3`).
			WithArgs(categoryID, 20, 0).
			WillReturnRows(productRow(sqlmock.NewRows(productColumns), uuid.New(), categoryID, "ايبوكسي", now))

		products, total, err := repo.ListPublic(ctx, filter)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, products, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No Filters Still Active Only", func(t *testing.T) {
		filter := &models.ProductFilter{Page: 1, Limit: 20}

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products p WHERE p.is_active = TRUE`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery(`WHERE p\.is_active = TRUE ORDER BY p\.created_at DESC`).
			WithArgs(20, 0).
			WillReturnRows(sqlmock.NewRows(productColumns))

		products, total, err := repo.ListPublic(ctx, filter)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, products)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductGetByID(t *testing.T) {
	repo, mock := newProductRepo(t)
	ctx := t.Context()
	now := time.Now()
	id := uuid.New()

	t.Run("Public Lookup Is Active Only", func(t *testing.T) {
		mock.ExpectQuery(`WHERE p\.id = \$1 AND p\.is_active = TRUE`).
			WithArgs(id).
			WillReturnRows(productRow(sqlmock.NewRows(productColumns), id, uuid.New(), "صوف صخري", now))

		product, err := repo.GetActiveByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, product.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Admin Lookup Has No Active Guard", func(t *testing.T) {
		mock.ExpectQuery(`WHERE p\.id = \$1$`).
			WithArgs(id).
			WillReturnRows(productRow(sqlmock.NewRows(productColumns), id, uuid.New(), "صوف صخري", now))

		product, err := repo.GetByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, product.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`WHERE p\.id = \$1 AND p\.is_active = TRUE`).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		product, err := repo.GetActiveByID(ctx, id)

		require.Error(t, err)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, product)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductCreate(t *testing.T) {
	repo, mock := newProductRepo(t)
	ctx := t.Context()
	now := time.Now()
	newID := uuid.New()

	product := &models.Product{
		CategoryID:     uuid.New(),
		NameAr:         "صوف صخري",
		NameEn:         "Rock Wool",
		Images:         []string{"/uploads/rockwool.webp"},
		Specifications: []string{"كثافة 50 كجم/م3"},
		IsActive:       true,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products (category_id, name_ar, name_en, description_ar, description_en, images, specifications, is_active, is_cash_import, has_custom_specs)`)).
		WithArgs(product.CategoryID, product.NameAr, product.NameEn, product.DescriptionAr, product.DescriptionEn,
			pq.Array(product.Images), pq.Array(product.Specifications), product.IsActive, product.IsCashImport, product.HasCustomSpecs).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID, now, now))

	err := repo.Create(ctx, product)

	require.NoError(t, err)
	assert.Equal(t, newID, product.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDelete(t *testing.T) {
	repo, mock := newProductRepo(t)
	ctx := t.Context()
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(ctx, id))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, id), sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductCountInquiryItems(t *testing.T) {
	repo, mock := newProductRepo(t)
	ctx := t.Context()
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM inquiry_items WHERE product_id = $1`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountInquiryItems(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
