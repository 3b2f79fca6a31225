package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/baluflix/baluflix/internal/catalog"
	"github.com/baluflix/baluflix/internal/models"
)

// VideoRepository implements catalog.Store over database/sql.
type VideoRepository struct {
	db *DB
}

func NewVideoRepository(db *DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Insert(ctx context.Context, video *models.Video) error {
	query := `
		INSERT INTO videos (
			storage_key, video_id, title, description, kind,
			source_url, filename, thumbnail, published, uploaded_by, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if r.db.dbType == "postgres" {
		query = `
		INSERT INTO videos (
			storage_key, video_id, title, description, kind,
			source_url, filename, thumbnail, published, uploaded_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	}

	_, err := r.db.conn.ExecContext(ctx, query,
		video.StorageKey,
		video.ID,
		video.Title,
		video.Description,
		string(video.Kind),
		video.SourceURL,
		video.Filename,
		video.Thumbnail,
		video.Published,
		video.UploadedBy,
		video.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert video: %w", err)
	}
	return nil
}

func (r *VideoRepository) List(ctx context.Context, publishedOnly bool) ([]models.Video, error) {
	query := `
		SELECT storage_key, video_id, title, description, kind,
			   source_url, filename, thumbnail, published, uploaded_by, created_at
		FROM videos`
	if publishedOnly {
		if r.db.dbType == "postgres" {
			query += ` WHERE published = TRUE`
		} else {
			query += ` WHERE published = 1`
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	videos := []models.Video{}
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *video)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate videos: %w", err)
	}

	return videos, nil
}

func (r *VideoRepository) GetByKey(ctx context.Context, key string) (*models.Video, error) {
	query := `
		SELECT storage_key, video_id, title, description, kind,
			   source_url, filename, thumbnail, published, uploaded_by, created_at
		FROM videos
		WHERE storage_key = ?`
	if r.db.dbType == "postgres" {
		query = `
		SELECT storage_key, video_id, title, description, kind,
			   source_url, filename, thumbnail, published, uploaded_by, created_at
		FROM videos
		WHERE storage_key = $1`
	}

	row := r.db.conn.QueryRowContext(ctx, query, key)
	video, err := scanVideo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrStoreNotFound
		}
		return nil, err
	}
	return video, nil
}

// Publish flips the published flag with a single UPDATE so a
// concurrent publish of the same record cannot lose the transition.
func (r *VideoRepository) Publish(ctx context.Context, key string) (*models.Video, error) {
	query := `UPDATE videos SET published = 1 WHERE storage_key = ?`
	if r.db.dbType == "postgres" {
		query = `UPDATE videos SET published = TRUE WHERE storage_key = $1`
	}

	result, err := r.db.conn.ExecContext(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("failed to publish video: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check publish result: %w", err)
	}
	if affected == 0 {
		return nil, catalog.ErrStoreNotFound
	}

	return r.GetByKey(ctx, key)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVideo(row rowScanner) (*models.Video, error) {
	var video models.Video
	var kind string
	var description, sourceURL, filename, thumbnail, uploadedBy sql.NullString

	err := row.Scan(
		&video.StorageKey,
		&video.ID,
		&video.Title,
		&description,
		&kind,
		&sourceURL,
		&filename,
		&thumbnail,
		&video.Published,
		&uploadedBy,
		&video.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan video: %w", err)
	}

	video.Kind = models.Kind(kind)
	video.Description = description.String
	video.SourceURL = sourceURL.String
	video.Filename = filename.String
	video.Thumbnail = thumbnail.String
	video.UploadedBy = uploadedBy.String

	return &video, nil
}
