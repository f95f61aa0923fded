package exercises

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/workoutmanager/internal/auth"
	"github.com/2beens/workoutmanager/internal/telemetry/tracing"
	"github.com/2beens/workoutmanager/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Overview(ctx context.Context) ([]CategoryExercises, error)
	Exercise(ctx context.Context, id int) (*Exercise, error)
	Muscles(ctx context.Context) ([]Muscle, error)
	Add(ctx context.Context, req ExerciseRequest) (*Exercise, error)
	Update(ctx context.Context, id int, req ExerciseRequest) error
	Delete(ctx context.Context, id int) error
	AddComment(ctx context.Context, exerciseID int, comment string) (*Comment, error)
	AddCategory(ctx context.Context, name string) (*Category, error)
	UpdateCategory(ctx context.Context, c Category) error
	DeleteCategory(ctx context.Context, id int) error
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.overview")
	defer span.End()

	overview, err := handler.repo.Overview(ctx)
	if err != nil {
		log.Errorf("exercises overview: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, overview, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	exercise, err := handler.repo.Exercise(ctx, id)
	if err != nil {
		writeError(w, err, "get exercise")
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) HandleMuscles(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.muscles")
	defer span.End()

	muscles, err := handler.repo.Muscles(ctx)
	if err != nil {
		log.Errorf("get muscles: %s", err)
		http.Error(w, "failed to get muscles", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, muscles, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	if !canManage(w, r) {
		return
	}

	var req ExerciseRequest
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}
	if !validExercise(w, &req) {
		return
	}

	exercise, err := handler.repo.Add(ctx, req)
	if err != nil {
		writeError(w, err, "add exercise")
		return
	}

	log.Debugf("new exercise added: %d %s", exercise.ID, exercise.Name)
	pkg.WriteJSON(w, exercise, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	if !canManage(w, r) {
		return
	}
	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	var req ExerciseRequest
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}
	if !validExercise(w, &req) {
		return
	}

	if err := handler.repo.Update(ctx, id, req); err != nil {
		writeError(w, err, "update exercise")
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	if !canManage(w, r) {
		return
	}
	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	if err := handler.repo.Delete(ctx, id); err != nil {
		writeError(w, err, "delete exercise")
		return
	}

	log.Debugf("exercise %d deleted", id)
	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.addComment")
	defer span.End()

	if !canManage(w, r) {
		return
	}
	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("exercise.id", id))

	var req struct {
		Comment string `json:"comment"`
	}
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}
	req.Comment = strings.TrimSpace(req.Comment)
	if req.Comment == "" {
		http.Error(w, "error, comment empty", http.StatusBadRequest)
		return
	}

	comment, err := handler.repo.AddComment(ctx, id, req.Comment)
	if err != nil {
		writeError(w, err, "add comment")
		return
	}

	pkg.WriteJSON(w, comment, http.StatusCreated)
}

func (handler *Handler) HandleAddCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.addCategory")
	defer span.End()

	if !canManage(w, r) {
		return
	}

	var c Category
	if !pkg.DecodeJSONRequest(w, r, &c) {
		return
	}
	if !validCategory(w, &c) {
		return
	}

	added, err := handler.repo.AddCategory(ctx, c.Name)
	if err != nil {
		writeError(w, err, "add category")
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.updateCategory")
	defer span.End()

	if !canManage(w, r) {
		return
	}
	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}

	var c Category
	if !pkg.DecodeJSONRequest(w, r, &c) {
		return
	}
	if !validCategory(w, &c) {
		return
	}
	c.ID = id

	if err := handler.repo.UpdateCategory(ctx, c); err != nil {
		writeError(w, err, "update category")
		return
	}

	pkg.WriteJSON(w, c, http.StatusOK)
}

func (handler *Handler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.deleteCategory")
	defer span.End()

	if !canManage(w, r) {
		return
	}
	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}

	if err := handler.repo.DeleteCategory(ctx, id); err != nil {
		writeError(w, err, "delete category")
		return
	}

	log.Debugf("exercise category %d deleted", id)
	pkg.WriteTextResponseOK(w, "deleted")
}

func canManage(w http.ResponseWriter, r *http.Request) bool {
	user, ok := auth.RequestUser(w, r)
	if !ok {
		return false
	}
	if !user.HasPermission(auth.PermManageExercises) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func validExercise(w http.ResponseWriter, req *ExerciseRequest) bool {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return false
	}
	if req.Category <= 0 {
		http.Error(w, "error, category required", http.StatusBadRequest)
		return false
	}
	if len(req.Muscles) == 0 {
		http.Error(w, "error, at least one muscle required", http.StatusBadRequest)
		return false
	}
	if req.Language == "" {
		req.Language = "en"
	}
	return true
}

func validCategory(w http.ResponseWriter, c *Category) bool {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error, what string) {
	switch {
	case errors.Is(err, ErrExerciseNotFound), errors.Is(err, ErrCategoryNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidReference):
		http.Error(w, ErrInvalidReference.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", what, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
