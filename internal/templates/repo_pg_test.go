package templates

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPGRepoGetByIndexBindsInteger(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "category", "template_index", "thumbnail_key", "created_at", "updated_at"}).
		AddRow("tpl-1", "Classic", "", "modern", 3, "", now, now)
	mock.ExpectQuery("SELECT id, name, description, category, template_index").
		WithArgs(3).
		WillReturnRows(rows)

	got, err := repo.GetByIndex(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByIndex: %v", err)
	}
	if got.TemplateIndex != 3 {
		t.Fatalf("expected index 3, got %d", got.TemplateIndex)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateMapsUniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	tpl := Template{ID: "tpl-1", Name: "Classic", Category: "modern", TemplateIndex: 1, CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec("INSERT INTO templates").
		WithArgs(tpl.ID, tpl.Name, tpl.Description, tpl.Category, tpl.TemplateIndex, tpl.ThumbnailKey, tpl.CreatedAt, tpl.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "templates_template_index_key"})

	if err := repo.Create(context.Background(), tpl); err != ErrConflict {
		t.Fatalf("expected ErrConflict on duplicate index, got %v", err)
	}
}

func TestPGRepoListOrdersByIndex(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "category", "template_index", "thumbnail_key", "created_at", "updated_at"}).
		AddRow("tpl-2", "Compact", "", "modern", 2, "", now, now).
		AddRow("tpl-10", "Wide", "", "modern", 10, "", now, now)
	mock.ExpectQuery(`ORDER BY template_index ASC`).
		WillReturnRows(rows)

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].TemplateIndex != 2 || list[1].TemplateIndex != 10 {
		t.Fatalf("expected numeric index ordering, got %+v", list)
	}
}
