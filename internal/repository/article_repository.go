package repository

import (
	"database/sql"
	"newscheck/internal/model"
	"time"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// SaveArticle reports false when the URL is already stored.
func (r *ArticleRepository) SaveArticle(article *model.Article) (bool, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO article(headline, body, url, source, publisher, published_at, external_id, status)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (url) DO NOTHING
		RETURNING id
	`, article.Headline, article.Body, article.URL, article.Source, article.Publisher, nullTime(article.PublishedAt), article.ExternalID, model.StatusPending).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	article.ID = id
	return true, nil
}

func (r *ArticleRepository) GetArticleByID(id int64) (*model.Article, error) {
	var a model.Article
	var publishedAt sql.NullTime
	err := r.db.QueryRow(`
		SELECT id, headline, body, url, source, publisher, published_at, fetched_at, external_id, status
		FROM article
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Headline, &a.Body, &a.URL, &a.Source, &a.Publisher, &publishedAt, &a.FetchedAt, &a.ExternalID, &a.Status)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	a.PublishedAt = publishedAt.Time
	return &a, nil
}

// GetRecentArticles lists the newest fetched headlines for the UI selector.
func (r *ArticleRepository) GetRecentArticles(limit int) ([]model.Article, error) {
	rows, err := r.db.Query(`
		SELECT id, headline, body, url, source, publisher, published_at, fetched_at, external_id, status
		FROM article
		WHERE body <> ''
		ORDER BY fetched_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		var a model.Article
		var publishedAt sql.NullTime
		err := rows.Scan(&a.ID, &a.Headline, &a.Body, &a.URL, &a.Source, &a.Publisher, &publishedAt, &a.FetchedAt, &a.ExternalID, &a.Status)
		if err != nil {
			return nil, err
		}
		a.PublishedAt = publishedAt.Time
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *ArticleRepository) UpdateStatus(id int64, status string) error {
	_, err := r.db.Exec(`
		UPDATE article SET status = $1 WHERE id = $2
	`, status, id)
	return err
}

func (r *ArticleRepository) SaveError(articleID int64, errMsg string, errType string) error {
	_, err := r.db.Exec(`
		INSERT INTO processing_error(article_id, error_message, error_type)
		VALUES($1, $2, $3)
	`, articleID, errMsg, errType)
	return err
}

func (r *ArticleRepository) GetErrorCount(id int64) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM processing_error WHERE article_id = $1
	`, id).Scan(&count)
	return count, err
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
