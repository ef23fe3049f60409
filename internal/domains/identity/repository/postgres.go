package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"photoshare-backend/internal/domains/identity"
)

// postgresDirectory là remote variant của identity.Directory, đọc/ghi
// bảng profiles. Dùng khi DEMO_MODE=false.
type postgresDirectory struct {
	pool *pgxpool.Pool
}

// NewPostgresDirectory trả về interface thay vì concrete type để container
// có thể swap giữa memory và postgres variant.
func NewPostgresDirectory(pool *pgxpool.Pool) identity.Directory {
	return &postgresDirectory{pool: pool}
}

const profileColumns = `id, name, email, dob, profile_pic, bio`

func (d *postgresDirectory) FindByID(ctx context.Context, id string) (*identity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE id = $1`, profileColumns)

	// Malformed id và unknown id đều là "not found" - một contract duy nhất,
	// không branch theo id shape.
	row := d.pool.QueryRow(ctx, query, id)
	return scanProfile(row)
}

func (d *postgresDirectory) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE LOWER(email) = $1`, profileColumns)

	row := d.pool.QueryRow(ctx, query, identity.NormalizeEmail(email))
	return scanProfile(row)
}

func (d *postgresDirectory) List(ctx context.Context) ([]identity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles ORDER BY name`, profileColumns)

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var users []identity.User
	for rows.Next() {
		user, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	return users, nil
}

func (d *postgresDirectory) UpdateProfile(ctx context.Context, user *identity.User) error {
	// Email cố tình không nằm trong SET - immutable sau khi tạo
	query := `
		UPDATE profiles
		SET name = $2, dob = $3, profile_pic = $4, bio = $5
		WHERE id = $1
	`

	tag, err := d.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Birthdate,
		user.AvatarURL,
		user.Bio,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return identity.ErrUserNotFound
	}

	return nil
}

// scanProfile maps one profiles row into the domain entity.
func scanProfile(row pgx.Row) (*identity.User, error) {
	var user identity.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Birthdate,
		&user.AvatarURL,
		&user.Bio,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrUserNotFound
		}
		// 22P02 = invalid_text_representation: id không parse được thành uuid.
		// Cùng contract với unknown id: not found.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
			return nil, identity.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	return &user, nil
}
