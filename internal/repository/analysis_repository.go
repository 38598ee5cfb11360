package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"newscheck/internal/model"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

const analysisColumns = `id, article_id, title, text, text_hash, label, probability, prediction_fallback,
		agree_or_not, explanation, verdict_status, response_error, model_used, warnings, created_at`

func (r *AnalysisRepository) SaveAnalysis(ctx context.Context, a *model.Analysis) error {
	warnings := a.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	warningsJSON, err := json.Marshal(warnings)
	if err != nil {
		return err
	}

	return r.db.QueryRowContext(ctx, `
		INSERT INTO analysis(article_id, title, text, text_hash, label, probability, prediction_fallback,
			agree_or_not, explanation, verdict_status, response_error, model_used, warnings)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`, a.ArticleID, a.Title, a.Text, a.TextHash, a.Label, a.Probability, a.PredictionFallback,
		a.AgreeOrNot, a.Explanation, a.VerdictStatus, a.ResponseError, a.ModelUsed, warningsJSON,
	).Scan(&a.ID, &a.CreatedAt)
}

func (r *AnalysisRepository) GetAnalyses(ctx context.Context, limit, offset int) ([]model.Analysis, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+analysisColumns+`
		FROM analysis
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []model.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return analyses, nil
}

func (r *AnalysisRepository) GetAnalysisTotal(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analysis`).Scan(&total)
	return total, err
}

func (r *AnalysisRepository) GetAnalysisByID(ctx context.Context, id int64) (*model.Analysis, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+analysisColumns+`
		FROM analysis
		WHERE id = $1
	`, id)

	a, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(s scanner) (*model.Analysis, error) {
	var a model.Analysis
	var articleID sql.NullInt64
	var warningsJSON []byte

	err := s.Scan(&a.ID, &articleID, &a.Title, &a.Text, &a.TextHash, &a.Label, &a.Probability, &a.PredictionFallback,
		&a.AgreeOrNot, &a.Explanation, &a.VerdictStatus, &a.ResponseError, &a.ModelUsed, &warningsJSON, &a.CreatedAt)
	if err != nil {
		return nil, err
	}

	if articleID.Valid {
		id := articleID.Int64
		a.ArticleID = &id
	}
	if err := json.Unmarshal(warningsJSON, &a.Warnings); err != nil {
		return nil, err
	}
	return &a, nil
}
