package auth

import (
	"context"
	"net/http"
	"slices"
	"time"
)

// Permissions a user can hold.
const (
	PermManageGyms      = "manage_gyms"
	PermManageGym       = "manage_gym"
	PermGymTrainer      = "gym_trainer"
	PermAddGym          = "add_gym"
	PermChangeGym       = "change_gym"
	PermDeleteGym       = "delete_gym"
	PermManageExercises = "manage_exercises"
	PermManageNutrition = "manage_nutrition"
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	GymID        *int      `json:"gym"`
	Permissions  []string  `json:"permissions"`
	Language     string    `json:"language"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) HasPermission(perm string) bool {
	return slices.Contains(u.Permissions, perm)
}

// InGym reports whether the user belongs to the gym.
func (u *User) InGym(gymID int) bool {
	return u.GymID != nil && *u.GymID == gymID
}

type userCtxKey struct{}

func ContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

// UserFromContext returns the logged user set by the auth middleware.
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(*User)
	return user, ok && user != nil
}

// RequestUser returns the logged user of the request or writes a 401.
func RequestUser(w http.ResponseWriter, r *http.Request) (*User, bool) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return nil, false
	}
	return user, true
}
