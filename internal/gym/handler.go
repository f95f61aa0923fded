package gym

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=gym_test

type gymRepo interface {
	List(ctx context.Context) ([]Gym, error)
	Get(ctx context.Context, id int) (Gym, error)
	Add(ctx context.Context, g Gym) (Gym, error)
	Update(ctx context.Context, g Gym) error
	Delete(ctx context.Context, id int) error
}

type membersRepo interface {
	ListByGym(ctx context.Context, gymID int) ([]auth.User, error)
	Add(ctx context.Context, user auth.User) (*auth.User, error)
}

type Handler struct {
	repo    gymRepo
	members membersRepo
	// ability to inject the password generator for new members (for unit testing)
	GeneratePasswordFunc func() (string, error)
}

func NewHandler(repo gymRepo, members membersRepo) *Handler {
	return &Handler{
		repo:                 repo,
		members:              members,
		GeneratePasswordFunc: pkg.GeneratePassword,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.list")
	defer span.End()

	if _, ok := requirePermission(w, r, auth.PermManageGyms); !ok {
		return
	}

	gyms, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list gyms: %s", err)
		http.Error(w, "failed to get gyms", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, gyms, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.add")
	defer span.End()

	if _, ok := requirePermission(w, r, auth.PermAddGym); !ok {
		return
	}

	var g Gym
	if !pkg.DecodeJSONRequest(w, r, &g) {
		return
	}
	if !validGym(w, g) {
		return
	}

	added, err := handler.repo.Add(ctx, g)
	if err != nil {
		log.Errorf("add gym: %s", err)
		http.Error(w, "failed to add gym", http.StatusInternalServerError)
		return
	}

	log.Debugf("gym %d added: %s", added.ID, added.Name)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.update")
	defer span.End()

	if _, ok := requirePermission(w, r, auth.PermChangeGym); !ok {
		return
	}
	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	var g Gym
	if !pkg.DecodeJSONRequest(w, r, &g) {
		return
	}
	if !validGym(w, g) {
		return
	}
	g.ID = id

	if err := handler.repo.Update(ctx, g); err != nil {
		writeError(w, err, "update gym")
		return
	}

	pkg.WriteJSON(w, g, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.delete")
	defer span.End()

	if _, ok := requirePermission(w, r, auth.PermDeleteGym); !ok {
		return
	}
	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	if err := handler.repo.Delete(ctx, id); err != nil {
		writeError(w, err, "delete gym")
		return
	}

	log.Debugf("gym %d deleted", id)
	pkg.WriteTextResponseOK(w, "deleted")
}

// HandleMembers lists the gym members, visible to managers and trainers of that same gym only.
func (handler *Handler) HandleMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.members")
	defer span.End()

	user, ok := auth.RequestUser(w, r)
	if !ok {
		return
	}
	gymID, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("gym.id", gymID))

	staff := user.HasPermission(auth.PermManageGym) || user.HasPermission(auth.PermGymTrainer)
	if !staff || !user.InGym(gymID) {
		log.Warnf("user %d not allowed to list members of gym %d", user.ID, gymID)
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	g, err := handler.repo.Get(ctx, gymID)
	if err != nil {
		writeError(w, err, "get gym")
		return
	}

	users, err := handler.members.ListByGym(ctx, gymID)
	if err != nil {
		log.Errorf("list members of gym %d: %s", gymID, err)
		http.Error(w, "failed to get members", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, NewMembersResponse(g, users), http.StatusOK)
}

// HandleAddMember creates a new user in the gym with a generated password.
func (handler *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.addMember")
	defer span.End()

	user, ok := auth.RequestUser(w, r)
	if !ok {
		return
	}
	gymID, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("gym.id", gymID))

	if !user.HasPermission(auth.PermManageGym) || !user.InGym(gymID) {
		log.Warnf("user %d not allowed to add members to gym %d", user.ID, gymID)
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req NewMemberRequest
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if req.Role == "" {
		req.Role = RoleUser
	}
	permissions, validRole := rolePermissions[req.Role]
	if !validRole {
		http.Error(w, "error, invalid role", http.StatusBadRequest)
		return
	}

	if _, err := handler.repo.Get(ctx, gymID); err != nil {
		writeError(w, err, "get gym")
		return
	}

	password, err := handler.GeneratePasswordFunc()
	if err != nil {
		log.Errorf("generate password: %s", err)
		http.Error(w, "failed to add member", http.StatusInternalServerError)
		return
	}
	passwordHash, err := pkg.HashPassword(password)
	if err != nil {
		log.Errorf("hash password: %s", err)
		http.Error(w, "failed to add member", http.StatusInternalServerError)
		return
	}

	newUser, err := handler.members.Add(ctx, auth.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		GymID:        &gymID,
		Permissions:  permissions,
		Language:     user.Language,
	})
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			http.Error(w, "error, username taken", http.StatusConflict)
			return
		}
		log.Errorf("add member to gym %d: %s", gymID, err)
		http.Error(w, "failed to add member", http.StatusInternalServerError)
		return
	}

	log.Debugf("user %d added member %d (%s) to gym %d", user.ID, newUser.ID, req.Role, gymID)
	pkg.WriteJSON(w, NewMemberResponse{
		User:     *newUser,
		Password: password,
	}, http.StatusCreated)
}

func requirePermission(w http.ResponseWriter, r *http.Request, perm string) (*auth.User, bool) {
	user, ok := auth.RequestUser(w, r)
	if !ok {
		return nil, false
	}
	if !user.HasPermission(perm) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return nil, false
	}
	return user, true
}

func validGym(w http.ResponseWriter, g Gym) bool {
	if strings.TrimSpace(g.Name) == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, ErrGymNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	log.Errorf("%s: %s", what, err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
