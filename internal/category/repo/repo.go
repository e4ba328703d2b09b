package repo

import (
	"database/sql"

	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	"github.com/go-openapi/strfmt"
	"github.com/jackc/pgx"
	pkgErrors "github.com/pkg/errors"
)

const categoryColumns = `c.id, c.name, c.description, c.icon,
	(SELECT count(*) FROM threads t WHERE t.category_id = c.id),
	(SELECT max(p.created) FROM posts p JOIN threads t ON p.thread_id = t.id WHERE t.category_id = c.id)`

type Repo struct {
	Conn *pgx.ConnPool
}

func NewRepo(conn *pgx.ConnPool) *Repo {
	conn.Prepare("list_categories", "SELECT "+categoryColumns+" FROM categories c ORDER BY c.position")
	conn.Prepare("get_category", "SELECT "+categoryColumns+" FROM categories c WHERE c.id=$1")
	return &Repo{Conn: conn}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCategory(row scanner) (*models.Category, error) {
	category := &models.Category{}
	var lastActivity sql.NullTime
	err := row.Scan(&category.Id, &category.Name, &category.Description, &category.Icon, &category.ThreadCount, &lastActivity)
	if err != nil {
		return nil, err
	}
	if lastActivity.Valid {
		category.LastActivity = strfmt.DateTime(lastActivity.Time.UTC())
	}
	return category, nil
}

func (r *Repo) List() ([]models.Category, error) {
	rows, err := r.Conn.Query("list_categories")
	if err != nil {
		return nil, pkgErrors.Wrap(err, "list categories")
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	return categories, rows.Err()
}

func (r *Repo) GetByID(id string) (*models.Category, error) {
	category, err := scanCategory(r.Conn.QueryRow("get_category", id))
	if err == pgx.ErrNoRows {
		return nil, pkgErrors.Wrap(errors.ErrNotFound, "category "+id)
	}
	if err != nil {
		return nil, pkgErrors.Wrap(err, "get category")
	}
	return category, nil
}
