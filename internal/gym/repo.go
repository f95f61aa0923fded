package gym

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workoutmanager/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrGymNotFound = errors.New("gym not found")

const gymColumns = `id, name, phone, email, owner, zip_code, city, street, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanGym(row pgx.Row) (Gym, error) {
	var g Gym
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Phone,
		&g.Email,
		&g.Owner,
		&g.ZipCode,
		&g.City,
		&g.Street,
		&g.CreatedAt,
	)
	return g, err
}

func (r *Repo) List(ctx context.Context) (_ []Gym, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+gymColumns+` FROM gym ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("gyms [query]: %w", err)
	}
	defer rows.Close()

	gyms := []Gym{}
	for rows.Next() {
		g, err := scanGym(rows)
		if err != nil {
			return nil, fmt.Errorf("gyms [rows scan]: %w", err)
		}
		gyms = append(gyms, g)
	}

	return gyms, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int) (_ Gym, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	g, err := scanGym(r.db.QueryRow(ctx, `SELECT `+gymColumns+` FROM gym WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Gym{}, ErrGymNotFound
		}
		return Gym{}, fmt.Errorf("gym [query row]: %w", err)
	}
	return g, nil
}

func (r *Repo) Add(ctx context.Context, g Gym) (_ Gym, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO gym
			    (name, phone, email, owner, zip_code, city, street)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at;
		`,
		g.Name, g.Phone, g.Email, g.Owner, g.ZipCode, g.City, g.Street,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return Gym{}, err
	}

	span.SetAttributes(attribute.Int("id", g.ID))
	return g, nil
}

func (r *Repo) Update(ctx context.Context, g Gym) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", g.ID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE gym
			SET name = $2, phone = $3, email = $4, owner = $5, zip_code = $6, city = $7, street = $8
			WHERE id = $1;
		`,
		g.ID, g.Name, g.Phone, g.Email, g.Owner, g.ZipCode, g.City, g.Street,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGymNotFound
	}
	return nil
}

// Delete removes the gym, members stay but lose their gym.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM gym WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGymNotFound
	}
	return nil
}
