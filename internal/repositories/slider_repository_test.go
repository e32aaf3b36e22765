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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSliderRepo(t *testing.T) (repository.SliderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repository.NewSliderRepo(db), mock
}

var sliderColumns = []string{"id", "title", "description", "image", "category", "is_active", "order", "button_text", "button_link", "created_at", "updated_at"}

func TestSliderListActive(t *testing.T) {
	repo, mock := newSliderRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows(sliderColumns).
		AddRow(uuid.New(), "عروض الشتاء على مواد العزل", "", "/uploads/winter.webp", "", true, 1, "تسوق الآن", "/products", now, now).
		AddRow(uuid.New(), "توريد مباشر من المصنع", "", "/uploads/factory.webp", "", true, 2, "", "", now, now)

	mock.ExpectQuery(`FROM hero_sliders WHERE is_active = TRUE ORDER BY "order" ASC`).WillReturnRows(rows)

	sliders, err := repo.ListActive(t.Context())

	require.NoError(t, err)
	require.Len(t, sliders, 2)
	assert.Equal(t, "عروض الشتاء على مواد العزل", sliders[0].Title)
	assert.Equal(t, 1, sliders[0].Order)
	assert.Equal(t, 2, sliders[1].Order)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSliderListAll(t *testing.T) {
	repo, mock := newSliderRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows(sliderColumns).
		AddRow(uuid.New(), "شريحة مؤرشفة", "", "/uploads/old.webp", "", false, 1, "", "", now, now)

	mock.ExpectQuery(`FROM hero_sliders ORDER BY "order" ASC`).WillReturnRows(rows)

	sliders, err := repo.ListAll(t.Context())

	require.NoError(t, err)
	require.Len(t, sliders, 1)
	assert.False(t, sliders[0].IsActive, "admin list includes inactive sliders")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSliderCreate(t *testing.T) {
	repo, mock := newSliderRepo(t)
	now := time.Now()
	newID := uuid.New()

	slider := &models.HeroSlider{
		Title:    "عروض الشتاء",
		Image:    "/uploads/winter.webp",
		IsActive: true,
		Order:    3,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO hero_sliders (title, description, image, category, is_active, "order", button_text, button_link)`)).
		WithArgs(slider.Title, slider.Description, slider.Image, slider.Category, slider.IsActive, slider.Order, slider.ButtonText, slider.ButtonLink).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID, now, now))

	err := repo.Create(t.Context(), slider)

	require.NoError(t, err)
	assert.Equal(t, newID, slider.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSliderUpdate(t *testing.T) {
	repo, mock := newSliderRepo(t)

	slider := &models.HeroSlider{
		ID:       uuid.New(),
		Title:    "عروض محدثة",
		Image:    "/uploads/updated.webp",
		IsActive: false,
		Order:    5,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SET title = $1, description = $2, image = $3, category = $4, is_active = $5, "order" = $6`)).
		WithArgs(slider.Title, slider.Description, slider.Image, slider.Category, slider.IsActive, slider.Order, slider.ButtonText, slider.ButtonLink, slider.ID).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

	err := repo.Update(t.Context(), slider)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSliderDelete(t *testing.T) {
	repo, mock := newSliderRepo(t)
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM hero_sliders WHERE id = $1`)).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(t.Context(), id))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM hero_sliders WHERE id = $1`)).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(t.Context(), id), sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
