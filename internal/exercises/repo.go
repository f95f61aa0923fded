package exercises

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/workoutmanager/internal/telemetry/tracing"
	"github.com/2beens/workoutmanager/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrCategoryNotFound = errors.New("category not found")
	// ErrInvalidReference is returned when a category or muscle does not exist.
	ErrInvalidReference = errors.New("invalid category or muscle")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Overview returns all categories by name, each with its exercises by name.
func (r *Repo) Overview(ctx context.Context) (_ []CategoryExercises, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    c.id, c.name, e.id, e.name, e.description, e.language, e.created_at
			FROM exercise_category c
			LEFT JOIN exercise e ON e.category_id = c.id
			ORDER BY c.name, c.id, e.name, e.id;
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("overview [query]: %w", err)
	}
	defer rows.Close()

	overview := []CategoryExercises{}
	for rows.Next() {
		var (
			c         Category
			exID      *int
			exName    *string
			exDesc    *string
			exLang    *string
			exCreated *time.Time
		)
		if err := rows.Scan(&c.ID, &c.Name, &exID, &exName, &exDesc, &exLang, &exCreated); err != nil {
			return nil, fmt.Errorf("overview [rows scan]: %w", err)
		}

		if len(overview) == 0 || overview[len(overview)-1].Category.ID != c.ID {
			overview = append(overview, CategoryExercises{Category: c, Exercises: []Exercise{}})
		}
		if exID == nil {
			continue
		}
		last := &overview[len(overview)-1]
		last.Exercises = append(last.Exercises, Exercise{
			ID:          *exID,
			Name:        *exName,
			Description: *exDesc,
			CategoryID:  c.ID,
			Language:    *exLang,
			CreatedAt:   *exCreated,
		})
	}

	return overview, rows.Err()
}

// Exercise returns the exercise with its muscles and comments.
func (r *Repo) Exercise(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var e Exercise
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, name, description, category_id, language, created_at
			FROM exercise
			WHERE id = $1;
		`,
		id,
	).Scan(&e.ID, &e.Name, &e.Description, &e.CategoryID, &e.Language, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("exercise [query row]: %w", err)
	}

	muscleRows, err := r.db.Query(
		ctx,
		`
			SELECT m.id, m.name, m.is_front
			FROM muscle m
			JOIN exercise_muscle em ON em.muscle_id = m.id
			WHERE em.exercise_id = $1
			ORDER BY m.id;
		`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise muscles [query]: %w", err)
	}
	e.Muscles, err = pgx.CollectRows(muscleRows, func(row pgx.CollectableRow) (Muscle, error) {
		var m Muscle
		err := row.Scan(&m.ID, &m.Name, &m.IsFront)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("exercise muscles [rows scan]: %w", err)
	}

	commentRows, err := r.db.Query(
		ctx,
		`
			SELECT id, exercise_id, comment, created_at
			FROM exercise_comment
			WHERE exercise_id = $1
			ORDER BY id;
		`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise comments [query]: %w", err)
	}
	e.Comments, err = pgx.CollectRows(commentRows, func(row pgx.CollectableRow) (Comment, error) {
		var c Comment
		err := row.Scan(&c.ID, &c.ExerciseID, &c.Comment, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("exercise comments [rows scan]: %w", err)
	}

	return &e, nil
}

func (r *Repo) Muscles(ctx context.Context) (_ []Muscle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.muscles")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name, is_front FROM muscle ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("muscles [query]: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Muscle, error) {
		var m Muscle
		err := row.Scan(&m.ID, &m.Name, &m.IsFront)
		return m, err
	})
}

// Exists reports whether the exercise is in the catalog.
func (r *Repo) Exists(ctx context.Context, id int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM exercise WHERE id = $1);`, id).Scan(&exists)
	return exists, err
}

func (r *Repo) Add(ctx context.Context, req ExerciseRequest) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = finishTx(ctx, tx, err)
	}()

	e := Exercise{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.Category,
		Language:    req.Language,
	}
	err = tx.QueryRow(
		ctx,
		`
			INSERT INTO exercise (name, description, category_id, language)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at;
		`,
		e.Name, e.Description, e.CategoryID, e.Language,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return nil, mapReferenceErr(err)
	}

	if err = setMuscles(ctx, tx, e.ID, req.Muscles); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("id", e.ID))
	return &e, nil
}

func (r *Repo) Update(ctx context.Context, id int, req ExerciseRequest) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = finishTx(ctx, tx, err)
	}()

	tag, err := tx.Exec(
		ctx,
		`
			UPDATE exercise
			SET name = $2, description = $3, category_id = $4, language = $5
			WHERE id = $1;
		`,
		id, req.Name, req.Description, req.Category, req.Language,
	)
	if err != nil {
		return mapReferenceErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	if _, err = tx.Exec(ctx, `DELETE FROM exercise_muscle WHERE exercise_id = $1;`, id); err != nil {
		return err
	}
	return setMuscles(ctx, tx, id, req.Muscles)
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) AddComment(ctx context.Context, exerciseID int, comment string) (_ *Comment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.addComment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	c := Comment{ExerciseID: exerciseID, Comment: comment}
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO exercise_comment (exercise_id, comment)
			VALUES ($1, $2)
			RETURNING id, created_at;
		`,
		exerciseID, comment,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repo) AddCategory(ctx context.Context, name string) (_ *Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.addCategory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	c := Category{Name: name}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_category (name) VALUES ($1) RETURNING id;`,
		name,
	).Scan(&c.ID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) UpdateCategory(ctx context.Context, c Category) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.updateCategory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", c.ID))

	tag, err := r.db.Exec(ctx, `UPDATE exercise_category SET name = $2 WHERE id = $1;`, c.ID, c.Name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// DeleteCategory removes the category together with its exercises.
func (r *Repo) DeleteCategory(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.deleteCategory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise_category WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func setMuscles(ctx context.Context, tx pgx.Tx, exerciseID int, muscles []int) error {
	for _, muscleID := range muscles {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO exercise_muscle (exercise_id, muscle_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`,
			exerciseID, muscleID,
		)
		if err != nil {
			return mapReferenceErr(err)
		}
	}
	return nil
}

// finishTx commits on success, otherwise rolls back and keeps both errors.
func finishTx(ctx context.Context, tx pgx.Tx, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			return multierr.Append(err, fmt.Errorf("rollback: %w", rollbackErr))
		}
		return err
	}
	return tx.Commit(ctx)
}

func mapReferenceErr(err error) error {
	if pkg.IsForeignKeyViolationError(err) {
		return fmt.Errorf("%w: %s", ErrInvalidReference, err)
	}
	return err
}
