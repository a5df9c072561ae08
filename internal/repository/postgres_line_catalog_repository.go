package repository

import (
	"context"
	"fmt"
	"log"

	"RailEscape-App/internal/domain/model"
	"RailEscape-App/internal/domain/repository"
	"RailEscape-App/internal/infrastructure/database"
)

// PostgresLineCatalogRepository rail_lines テーブルから路線一覧を読む
type PostgresLineCatalogRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresLineCatalogRepository(client *database.PostgreSQLClient) repository.LineCatalogRepository {
	return &PostgresLineCatalogRepository{
		client: client,
	}
}

func (r *PostgresLineCatalogRepository) ListLines(ctx context.Context) ([]model.Line, error) {
	query := `SELECT id, name FROM rail_lines ORDER BY sort_order, id`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("路線一覧の取得に失敗: %w", err)
	}
	defer rows.Close()

	var lines []model.Line
	for rows.Next() {
		var line model.Line
		if err := rows.Scan(&line.ID, &line.Name); err != nil {
			return nil, fmt.Errorf("路線データのスキャンに失敗: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("路線一覧の読み込み中にエラー: %w", err)
	}
	return lines, nil
}

// FallbackLineCatalogRepository 主リポジトリが失敗または空なら予備を使う
type FallbackLineCatalogRepository struct {
	primary  repository.LineCatalogRepository
	fallback repository.LineCatalogRepository
}

func NewFallbackLineCatalogRepository(primary, fallback repository.LineCatalogRepository) repository.LineCatalogRepository {
	return &FallbackLineCatalogRepository{
		primary:  primary,
		fallback: fallback,
	}
}

func (r *FallbackLineCatalogRepository) ListLines(ctx context.Context) ([]model.Line, error) {
	lines, err := r.primary.ListLines(ctx)
	if err != nil {
		log.Printf("⚠️ 路線カタログの取得に失敗、組み込みの一覧を使用: %v", err)
		return r.fallback.ListLines(ctx)
	}
	if len(lines) == 0 {
		return r.fallback.ListLines(ctx)
	}
	return lines, nil
}
