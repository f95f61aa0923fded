package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workoutmanager/internal/telemetry/tracing"
	"github.com/2beens/workoutmanager/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

const userColumns = `id, username, email, password_hash, gym_id, permissions, language, created_at`

type UsersRepo struct {
	db *pgxpool.Pool
}

func NewUsersRepo(db *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.GymID, &u.Permissions, &u.Language, &u.CreatedAt,
	); err != nil {
		return nil, err
	}
	if u.Permissions == nil {
		u.Permissions = []string{}
	}
	return &u, nil
}

func (r *UsersRepo) ByID(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.byId")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *UsersRepo) ByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.byUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("username", username))

	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1;`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *UsersRepo) ListByGym(ctx context.Context, gymID int) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.listByGym")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("gym.id", gymID))

	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE gym_id = $1 ORDER BY username;`, gymID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// Add stores the user; PasswordHash must already be set.
func (r *UsersRepo) Add(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if user.Permissions == nil {
		user.Permissions = []string{}
	}
	if user.Language == "" {
		user.Language = "en"
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO users (username, email, password_hash, gym_id, permissions, language)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at;`,
		user.Username, user.Email, user.PasswordHash, user.GymID, user.Permissions, user.Language,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("user.id", user.ID))
	return &user, nil
}

func (r *UsersRepo) SetPermissions(ctx context.Context, id int, permissions []string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.setPermissions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `UPDATE users SET permissions = $1 WHERE id = $2;`, permissions, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
