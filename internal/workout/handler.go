package workout

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/workoutmanager/internal/auth"
	"github.com/2beens/workoutmanager/internal/telemetry/tracing"
	"github.com/2beens/workoutmanager/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workout_test

type workoutRepo interface {
	WorkoutsByUser(ctx context.Context, userID int) ([]Workout, error)
	Workout(ctx context.Context, id int) (*Workout, error)
	WorkoutOwner(ctx context.Context, id int) (int, error)
	AddWorkout(ctx context.Context, w Workout) (*Workout, error)
	DeleteWorkout(ctx context.Context, id int) error
	AddDay(ctx context.Context, d Day) (*Day, error)
	UpdateDay(ctx context.Context, d Day) error
	DeleteDay(ctx context.Context, workoutID, dayID int) error
	AddSet(ctx context.Context, workoutID int, s Set) (*Set, error)
	DeleteSet(ctx context.Context, workoutID, dayID, setID int) error
	AddSetting(ctx context.Context, workoutID int, st Setting) (*Setting, error)
	DeleteSetting(ctx context.Context, workoutID, setID, settingID int) error
	AddLog(ctx context.Context, e LogEntry) (*LogEntry, error)
}

type historyAnalyzer interface {
	ExerciseHistory(ctx context.Context, userID, exerciseID int) (*ExerciseHistory, error)
}

type Handler struct {
	repo     workoutRepo
	analyzer historyAnalyzer
}

func NewHandler(repo workoutRepo, analyzer historyAnalyzer) *Handler {
	return &Handler{
		repo:     repo,
		analyzer: analyzer,
	}
}

type workoutRequest struct {
	Comment string `json:"comment"`
}

type dayRequest struct {
	Description string `json:"description"`
	DaysOfWeek  []int  `json:"daysOfWeek"`
}

type setRequest struct {
	SetsCount int `json:"setsCount"`
}

type settingRequest struct {
	ExerciseID int `json:"exerciseId"`
	Reps       int `json:"reps"`
}

type logRequest struct {
	ExerciseID int     `json:"exerciseId"`
	WorkoutID  *int    `json:"workoutId"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	// Date is YYYY-MM-DD, today when empty
	Date string `json:"date"`
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.list")
	defer span.End()

	user, ok := auth.RequestUser(w, r)
	if !ok {
		return
	}

	workouts, err := handler.repo.WorkoutsByUser(ctx, user.ID)
	if err != nil {
		log.Errorf("list workouts for user %d: %s", user.ID, err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, workouts, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.add")
	defer span.End()

	user, ok := auth.RequestUser(w, r)
	if !ok {
		return
	}

	var req workoutRequest
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}

	workout, err := handler.repo.AddWorkout(ctx, Workout{
		UserID:  user.ID,
		Comment: strings.TrimSpace(req.Comment),
	})
	if err != nil {
		log.Errorf("add workout for user %d: %s", user.ID, err)
		http.Error(w, "failed to add workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout %d added for user %d", workout.ID, user.ID)
	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.get")
	defer span.End()

	id, ok := handler.ownedWorkout(ctx, w, r)
	if !ok {
		return
	}

	workout, err := handler.repo.Workout(ctx, id)
	if err != nil {
		writeError(w, err, "get workout")
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.delete")
	defer span.End()

	id, ok := handler.ownedWorkout(ctx, w, r)
	if !ok {
		return
	}

	if err := handler.repo.DeleteWorkout(ctx, id); err != nil {
		writeError(w, err, "delete workout")
		return
	}

	log.Debugf("workout %d deleted", id)
	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleAddDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.addDay")
	defer span.End()

	id, ok := handler.ownedWorkout(ctx, w, r)
	if !ok {
		return
	}

	var req dayRequest
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}
	if !validDay(w, &req) {
		return
	}

	day, err := handler.repo.AddDay(ctx, Day{
		WorkoutID:   id,
		Description: req.Description,
		DaysOfWeek:  req.DaysOfWeek,
	})
	if err != nil {
		writeError(w, err, "add workout day")
		return
	}

	pkg.WriteJSON(w, day, http.StatusCreated)
}

func (handler *Handler) HandleUpdateDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.updateDay")
	defer span.End()

	id, ok := handler.ownedWorkout(ctx, w, r)
	if !ok {
		return
	}
	dayID, ok := pkg.IntPathVar(w, r, "dayId")
	if !ok {
		return
	}

	var req dayRequest
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}
	if !validDay(w, &req) {
		return
	}

	day := Day{
		ID:          dayID,
		WorkoutID:   id,
		Description: req.Description,
		DaysOfWeek:  req.DaysOfWeek,
	}
	if err := handler.repo.UpdateDay(ctx, day); err != nil {
		writeError(w, err, "update workout day")
		return
	}

	pkg.WriteJSON(w, day, http.StatusOK)
}

func (handler *Handler) HandleDeleteDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.deleteDay")
	defer span.End()

	id, ok := handler.ownedWorkout(ctx, w, r)
	if !ok {
		return
	}
	dayID, ok := pkg.IntPathVar(w, r, "dayId")
	if !ok {
		return
	}

	if err := handler.repo.DeleteDay(ctx, id, dayID); err != nil {
		writeError(w, err, "delete workout day")
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.addSet")
	defer span.End()

	id, ok := handler.ownedWorkout(ctx, w, r)
	if !ok {
		return
	}
	dayID, ok := pkg.IntPathVar(w, r, "dayId")
	if !ok {
		return
	}

	var req setRequest
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}
	if req.SetsCount < 1 || req.SetsCount > MaxSetsCount {
		http.Error(w, "error, sets count must be between 1 and 10", http.StatusBadRequest)
		return
	}

	set, err := handler.repo.AddSet(ctx, id, Set{DayID: dayID, SetsCount: req.SetsCount})
	if err != nil {
		writeError(w, err, "add workout set")
		return
	}

	pkg.WriteJSON(w, set, http.StatusCreated)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.deleteSet")
	defer span.End()

	id, ok := handler.ownedWorkout(ctx, w, r)
	if !ok {
		return
	}
	dayID, ok := pkg.IntPathVar(w, r, "dayId")
	if !ok {
		return
	}
	setID, ok := pkg.IntPathVar(w, r, "setId")
	if !ok {
		return
	}

	if err := handler.repo.DeleteSet(ctx, id, dayID, setID); err != nil {
		writeError(w, err, "delete workout set")
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleAddSetting(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.addSetting")
	defer span.End()

	id, ok := handler.ownedWorkout(ctx, w, r)
	if !ok {
		return
	}
	setID, ok := pkg.IntPathVar(w, r, "setId")
	if !ok {
		return
	}

	var req settingRequest
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}
	if req.ExerciseID <= 0 {
		http.Error(w, "error, exercise required", http.StatusBadRequest)
		return
	}
	if req.Reps < 0 || req.Reps > MaxReps {
		http.Error(w, "error, reps must be between 0 and 100", http.StatusBadRequest)
		return
	}

	setting, err := handler.repo.AddSetting(ctx, id, Setting{
		SetID:      setID,
		ExerciseID: req.ExerciseID,
		Reps:       req.Reps,
	})
	if err != nil {
		writeError(w, err, "add workout setting")
		return
	}

	pkg.WriteJSON(w, setting, http.StatusCreated)
}

func (handler *Handler) HandleDeleteSetting(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.deleteSetting")
	defer span.End()

	id, ok := handler.ownedWorkout(ctx, w, r)
	if !ok {
		return
	}
	setID, ok := pkg.IntPathVar(w, r, "setId")
	if !ok {
		return
	}
	settingID, ok := pkg.IntPathVar(w, r, "settingId")
	if !ok {
		return
	}

	if err := handler.repo.DeleteSetting(ctx, id, setID, settingID); err != nil {
		writeError(w, err, "delete workout setting")
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleAddLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.addLog")
	defer span.End()

	user, ok := auth.RequestUser(w, r)
	if !ok {
		return
	}

	var req logRequest
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}
	if req.ExerciseID <= 0 {
		http.Error(w, "error, exercise required", http.StatusBadRequest)
		return
	}
	if req.Reps < 0 || req.Reps > MaxReps {
		http.Error(w, "error, reps must be between 0 and 100", http.StatusBadRequest)
		return
	}
	if req.Weight < 0 {
		http.Error(w, "error, weight must not be negative", http.StatusBadRequest)
		return
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse(dayLayout, req.Date)
		if err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	if req.WorkoutID != nil {
		ownerID, err := handler.repo.WorkoutOwner(ctx, *req.WorkoutID)
		if err != nil {
			writeError(w, err, "get workout owner")
			return
		}
		if ownerID != user.ID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
	}

	entry, err := handler.repo.AddLog(ctx, LogEntry{
		UserID:     user.ID,
		ExerciseID: req.ExerciseID,
		WorkoutID:  req.WorkoutID,
		Reps:       req.Reps,
		Weight:     req.Weight,
		Date:       date,
	})
	if err != nil {
		writeError(w, err, "add workout log")
		return
	}

	pkg.WriteJSON(w, entry, http.StatusCreated)
}

func (handler *Handler) HandleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.exerciseHistory")
	defer span.End()

	user, ok := auth.RequestUser(w, r)
	if !ok {
		return
	}
	exerciseID, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}

	history, err := handler.analyzer.ExerciseHistory(ctx, user.ID, exerciseID)
	if err != nil {
		log.Errorf("exercise %d history for user %d: %s", exerciseID, user.ID, err)
		http.Error(w, "failed to get exercise history", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, history, http.StatusOK)
}

// ownedWorkout reads the workout id from the path and checks it belongs to the logged user.
func (handler *Handler) ownedWorkout(ctx context.Context, w http.ResponseWriter, r *http.Request) (int, bool) {
	user, ok := auth.RequestUser(w, r)
	if !ok {
		return 0, false
	}
	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return 0, false
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("workout.id", id))

	ownerID, err := handler.repo.WorkoutOwner(ctx, id)
	if err != nil {
		writeError(w, err, "get workout owner")
		return 0, false
	}
	if ownerID != user.ID {
		log.Warnf("user %d tried to access workout %d of user %d", user.ID, id, ownerID)
		http.Error(w, "forbidden", http.StatusForbidden)
		return 0, false
	}
	return id, true
}

func validDay(w http.ResponseWriter, req *dayRequest) bool {
	req.Description = strings.TrimSpace(req.Description)
	if req.Description == "" {
		http.Error(w, "error, description empty", http.StatusBadRequest)
		return false
	}
	if len(req.DaysOfWeek) == 0 {
		http.Error(w, "error, at least one day of week required", http.StatusBadRequest)
		return false
	}
	for _, d := range req.DaysOfWeek {
		if d < 1 || d > 7 {
			http.Error(w, "error, invalid day of week", http.StatusBadRequest)
			return false
		}
	}
	return true
}

func writeError(w http.ResponseWriter, err error, what string) {
	switch {
	case errors.Is(err, ErrWorkoutNotFound),
		errors.Is(err, ErrDayNotFound),
		errors.Is(err, ErrSetNotFound),
		errors.Is(err, ErrSettingNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrUnknownExercise):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", what, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
