package workout

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
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrDayNotFound     = errors.New("workout day not found")
	ErrSetNotFound     = errors.New("workout set not found")
	ErrSettingNotFound = errors.New("workout setting not found")
	ErrUnknownExercise = errors.New("unknown exercise")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) WorkoutsByUser(ctx context.Context, userID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.byUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, comment, created_at
			FROM workout
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC;
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("workouts [query]: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Workout, error) {
		w := Workout{Days: []Day{}}
		err := row.Scan(&w.ID, &w.UserID, &w.Comment, &w.CreatedAt)
		return w, err
	})
}

// Workout returns the whole workout tree: days, their sets and the sets' settings.
func (r *Repo) Workout(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	w := &Workout{Days: []Day{}}
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, comment, created_at FROM workout WHERE id = $1;`,
		id,
	).Scan(&w.ID, &w.UserID, &w.Comment, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("workout [query row]: %w", err)
	}

	dayRows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, description, days_of_week FROM workout_day WHERE workout_id = $1 ORDER BY id;`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("workout days [query]: %w", err)
	}
	w.Days, err = pgx.CollectRows(dayRows, func(row pgx.CollectableRow) (Day, error) {
		d := Day{Sets: []Set{}}
		err := row.Scan(&d.ID, &d.WorkoutID, &d.Description, &d.DaysOfWeek)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("workout days [rows scan]: %w", err)
	}

	setRows, err := r.db.Query(
		ctx,
		`
			SELECT s.id, s.day_id, s."order", s.sets_count
			FROM workout_set s
			JOIN workout_day d ON d.id = s.day_id
			WHERE d.workout_id = $1
			ORDER BY s."order", s.id;
		`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("workout sets [query]: %w", err)
	}
	sets, err := pgx.CollectRows(setRows, func(row pgx.CollectableRow) (Set, error) {
		s := Set{Settings: []Setting{}}
		err := row.Scan(&s.ID, &s.DayID, &s.Order, &s.SetsCount)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("workout sets [rows scan]: %w", err)
	}

	settingRows, err := r.db.Query(
		ctx,
		`
			SELECT st.id, st.set_id, st.exercise_id, st.reps, st."order"
			FROM workout_setting st
			JOIN workout_set s ON s.id = st.set_id
			JOIN workout_day d ON d.id = s.day_id
			WHERE d.workout_id = $1
			ORDER BY st."order", st.id;
		`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("workout settings [query]: %w", err)
	}
	settings, err := pgx.CollectRows(settingRows, func(row pgx.CollectableRow) (Setting, error) {
		var st Setting
		err := row.Scan(&st.ID, &st.SetID, &st.ExerciseID, &st.Reps, &st.Order)
		return st, err
	})
	if err != nil {
		return nil, fmt.Errorf("workout settings [rows scan]: %w", err)
	}

	assembleTree(w, sets, settings)
	return w, nil
}

// assembleTree attaches the ordered sets and settings to their parents.
func assembleTree(w *Workout, sets []Set, settings []Setting) {
	set2settings := make(map[int][]Setting)
	for _, st := range settings {
		set2settings[st.SetID] = append(set2settings[st.SetID], st)
	}
	day2sets := make(map[int][]Set)
	for _, s := range sets {
		if sts, ok := set2settings[s.ID]; ok {
			s.Settings = sts
		}
		day2sets[s.DayID] = append(day2sets[s.DayID], s)
	}
	for i := range w.Days {
		if ds, ok := day2sets[w.Days[i].ID]; ok {
			w.Days[i].Sets = ds
		}
	}
}

func (r *Repo) WorkoutOwner(ctx context.Context, id int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.owner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var userID int
	err = r.db.QueryRow(ctx, `SELECT user_id FROM workout WHERE id = $1;`, id).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrWorkoutNotFound
		}
		return 0, err
	}
	return userID, nil
}

func (r *Repo) AddWorkout(ctx context.Context, w Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout (user_id, comment) VALUES ($1, $2) RETURNING id, created_at;`,
		w.UserID, w.Comment,
	).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	w.Days = []Day{}
	return &w, nil
}

func (r *Repo) DeleteWorkout(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) AddDay(ctx context.Context, d Day) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.addDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", d.WorkoutID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_day (workout_id, description, days_of_week) VALUES ($1, $2, $3) RETURNING id;`,
		d.WorkoutID, d.Description, d.DaysOfWeek,
	).Scan(&d.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	d.Sets = []Set{}
	return &d, nil
}

func (r *Repo) UpdateDay(ctx context.Context, d Day) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.updateDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", d.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_day SET description = $3, days_of_week = $4 WHERE id = $1 AND workout_id = $2;`,
		d.ID, d.WorkoutID, d.Description, d.DaysOfWeek,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDayNotFound
	}
	return nil
}

func (r *Repo) DeleteDay(ctx context.Context, workoutID, dayID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.deleteDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", dayID))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_day WHERE id = $1 AND workout_id = $2;`, dayID, workoutID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDayNotFound
	}
	return nil
}

// AddSet appends the set to the end of the day.
func (r *Repo) AddSet(ctx context.Context, workoutID int, s Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.addSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day.id", s.DayID))

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO workout_set (day_id, "order", sets_count)
			SELECT d.id, COALESCE((SELECT MAX(s."order") FROM workout_set s WHERE s.day_id = d.id), 0) + 1, $3
			FROM workout_day d
			WHERE d.id = $1 AND d.workout_id = $2
			RETURNING id, "order";
		`,
		s.DayID, workoutID, s.SetsCount,
	).Scan(&s.ID, &s.Order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}
	s.Settings = []Setting{}
	return &s, nil
}

func (r *Repo) DeleteSet(ctx context.Context, workoutID, dayID, setID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.deleteSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", setID))

	tag, err := r.db.Exec(
		ctx,
		`
			DELETE FROM workout_set s
			USING workout_day d
			WHERE s.id = $1 AND s.day_id = $2 AND d.id = s.day_id AND d.workout_id = $3;
		`,
		setID, dayID, workoutID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

// AddSetting appends the exercise setting to the end of the set.
func (r *Repo) AddSetting(ctx context.Context, workoutID int, st Setting) (_ *Setting, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.addSetting")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", st.SetID))

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO workout_setting (set_id, exercise_id, reps, "order")
			SELECT s.id, $3, $4, COALESCE((SELECT MAX(st."order") FROM workout_setting st WHERE st.set_id = s.id), 0) + 1
			FROM workout_set s
			JOIN workout_day d ON d.id = s.day_id
			WHERE s.id = $1 AND d.workout_id = $2
			RETURNING id, "order";
		`,
		st.SetID, workoutID, st.ExerciseID, st.Reps,
	).Scan(&st.ID, &st.Order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSetNotFound
		}
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrUnknownExercise
		}
		return nil, err
	}
	return &st, nil
}

func (r *Repo) DeleteSetting(ctx context.Context, workoutID, setID, settingID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.deleteSetting")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", settingID))

	tag, err := r.db.Exec(
		ctx,
		`
			DELETE FROM workout_setting st
			USING workout_set s, workout_day d
			WHERE st.id = $1 AND st.set_id = $2 AND s.id = st.set_id AND d.id = s.day_id AND d.workout_id = $3;
		`,
		settingID, setID, workoutID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSettingNotFound
	}
	return nil
}

func (r *Repo) AddLog(ctx context.Context, e LogEntry) (_ *LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.addLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", e.ExerciseID))

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO workout_log (user_id, exercise_id, workout_id, reps, weight, date)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;
		`,
		e.UserID, e.ExerciseID, e.WorkoutID, e.Reps, e.Weight, e.Date,
	).Scan(&e.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrUnknownExercise
		}
		return nil, err
	}
	return &e, nil
}

func (r *Repo) LogsByExercise(ctx context.Context, userID, exerciseID int) (_ []LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.logsByExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, exercise_id, workout_id, reps, weight, date
			FROM workout_log
			WHERE user_id = $1 AND exercise_id = $2
			ORDER BY date, id;
		`,
		userID, exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("workout logs [query]: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (LogEntry, error) {
		var e LogEntry
		err := row.Scan(&e.ID, &e.UserID, &e.ExerciseID, &e.WorkoutID, &e.Reps, &e.Weight, &e.Date)
		return e, err
	})
}
