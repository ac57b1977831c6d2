package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sann404/sannmusic/internal/model"
)

// PutDownload writes (or overwrites) an offline download record.
func (s *StoreImpl) PutDownload(ctx context.Context, record *model.DownloadRecord) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO offline_downloads (id, title, artist, image, audio_url, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			artist = excluded.artist,
			image = excluded.image,
			audio_url = excluded.audio_url,
			saved_at = excluded.saved_at`,
		record.ID, record.Title, record.Artist, record.Image,
		record.AudioURL, record.SavedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to put download record: %w", err)
	}

	return nil
}

// GetDownload fetches a download record by track ID.
func (s *StoreImpl) GetDownload(ctx context.Context, id string) (*model.DownloadRecord, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx,
		`SELECT id, title, artist, image, audio_url, saved_at
		 FROM offline_downloads WHERE id = ?`, id)

	record, err := scanDownload(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: download '%s'", ErrRecordNotFound, id)
		}

		return nil, fmt.Errorf("failed to get download record: %w", err)
	}

	return record, nil
}

// DeleteDownload removes a download record by track ID.
func (s *StoreImpl) DeleteDownload(ctx context.Context, id string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	if _, err = db.ExecContext(ctx, `DELETE FROM offline_downloads WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete download record: %w", err)
	}

	return nil
}

// ListDownloads returns all download records, newest first.
func (s *StoreImpl) ListDownloads(ctx context.Context) ([]*model.DownloadRecord, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, title, artist, image, audio_url, saved_at
		 FROM offline_downloads ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list download records: %w", err)
	}

	defer rows.Close() //nolint:errcheck // Error on close is not critical here.

	var records []*model.DownloadRecord

	for rows.Next() {
		record, scanErr := scanDownload(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan download record: %w", scanErr)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate download records: %w", err)
	}

	return records, nil
}

// rowScanner abstracts sql.Row and sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDownload(row rowScanner) (*model.DownloadRecord, error) {
	var (
		record      model.DownloadRecord
		savedAtUnix int64
	)

	err := row.Scan(&record.ID, &record.Title, &record.Artist,
		&record.Image, &record.AudioURL, &savedAtUnix)
	if err != nil {
		return nil, err
	}

	record.SavedAt = time.UnixMilli(savedAtUnix).UTC()

	return &record, nil
}
