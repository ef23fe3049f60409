package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"photoshare-backend/internal/domains/media"
)

// postgresBackend là remote variant của media.Backend. Single attempt,
// fail-fast: store phía trên map lỗi thành generic upstream failure.
type postgresBackend struct {
	pool *pgxpool.Pool
}

func NewPostgresBackend(pool *pgxpool.Pool) media.Backend {
	return &postgresBackend{pool: pool}
}

func (b *postgresBackend) Load(ctx context.Context) ([]media.Media, map[string][]media.Comment, error) {
	mediaQuery := `
		SELECT id, title, description, url, thumbnail_url, media_type,
		       user_id, created_at, tags, likes
		FROM media
		ORDER BY created_at DESC
	`

	rows, err := b.pool.Query(ctx, mediaQuery)
	if err != nil {
		return nil, nil, fmt.Errorf("load media: %w", err)
	}
	defer rows.Close()

	var medias []media.Media
	for rows.Next() {
		var m media.Media
		var tags []string
		err := rows.Scan(
			&m.ID,
			&m.Title,
			&m.Description,
			&m.URL,
			&m.ThumbnailURL,
			&m.Type,
			&m.UserID,
			&m.CreatedAt,
			pq.Array(&tags),
			&m.Likes,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("scan media: %w", err)
		}
		m.Tags = tags
		medias = append(medias, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("load media: %w", err)
	}

	comments, err := b.loadComments(ctx)
	if err != nil {
		return nil, nil, err
	}

	return medias, comments, nil
}

func (b *postgresBackend) loadComments(ctx context.Context) (map[string][]media.Comment, error) {
	query := `
		SELECT id, media_id, user_id, content, created_at
		FROM comments
		ORDER BY media_id, created_at
	`

	rows, err := b.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	defer rows.Close()

	comments := make(map[string][]media.Comment)
	for rows.Next() {
		var c media.Comment
		err := rows.Scan(&c.ID, &c.MediaID, &c.UserID, &c.Content, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments[c.MediaID] = append(comments[c.MediaID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}

	return comments, nil
}

func (b *postgresBackend) InsertMedia(ctx context.Context, item media.Media) error {
	query := `
		INSERT INTO media (
			id, title, description, url, thumbnail_url, media_type,
			user_id, created_at, tags, likes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := b.pool.Exec(ctx, query,
		item.ID,
		item.Title,
		item.Description,
		item.URL,
		item.ThumbnailURL,
		item.Type,
		item.UserID,
		item.CreatedAt,
		pq.Array(item.Tags),
		item.Likes,
	)
	if err != nil {
		return fmt.Errorf("insert media: %w", err)
	}
	return nil
}

func (b *postgresBackend) UpdateMedia(ctx context.Context, item media.Media) error {
	query := `
		UPDATE media
		SET title = $2, description = $3, thumbnail_url = $4, tags = $5, likes = $6
		WHERE id = $1
	`

	tag, err := b.pool.Exec(ctx, query,
		item.ID,
		item.Title,
		item.Description,
		item.ThumbnailURL,
		pq.Array(item.Tags),
		item.Likes,
	)
	if err != nil {
		return fmt.Errorf("update media: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return media.ErrMediaNotFound
	}
	return nil
}

// RemoveMedia xóa media và cascade comments trong cùng một transaction -
// không có trạng thái nửa vời nào được commit.
func (b *postgresBackend) RemoveMedia(ctx context.Context, id string) error {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin remove media: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE media_id = $1`, id); err != nil {
		return fmt.Errorf("remove comments: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("remove media: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return media.ErrMediaNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit remove media: %w", err)
	}
	return nil
}

func (b *postgresBackend) InsertComment(ctx context.Context, comment media.Comment) error {
	query := `
		INSERT INTO comments (id, media_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := b.pool.Exec(ctx, query,
		comment.ID,
		comment.MediaID,
		comment.UserID,
		comment.Content,
		comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (b *postgresBackend) RemoveComment(ctx context.Context, mediaID, commentID string) error {
	tag, err := b.pool.Exec(ctx,
		`DELETE FROM comments WHERE id = $1 AND media_id = $2`,
		commentID, mediaID,
	)
	if err != nil {
		return fmt.Errorf("remove comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return media.ErrCommentNotFound
	}
	return nil
}
