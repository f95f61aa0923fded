package gym

import (
	"time"

	"github.com/2beens/workoutmanager/internal/auth"
)

type Gym struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Owner     string    `json:"owner"`
	ZipCode   string    `json:"zipCode"`
	City      string    `json:"city"`
	Street    string    `json:"street"`
	CreatedAt time.Time `json:"createdAt"`
}

// Roles a gym manager can give to new members.
const (
	RoleUser    = "user"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

// rolePermissions maps a member role to the permissions it grants.
var rolePermissions = map[string][]string{
	RoleUser:    {},
	RoleTrainer: {auth.PermGymTrainer},
	RoleAdmin:   {auth.PermManageGym},
}

type MemberPermissions struct {
	ManageGym  bool `json:"manageGym"`
	ManageGyms bool `json:"manageGyms"`
	GymTrainer bool `json:"gymTrainer"`
	AnyAdmin   bool `json:"anyAdmin"`
}

type Member struct {
	User  auth.User         `json:"user"`
	Perms MemberPermissions `json:"perms"`
}

func newMember(u auth.User) Member {
	perms := MemberPermissions{
		ManageGym:  u.HasPermission(auth.PermManageGym),
		ManageGyms: u.HasPermission(auth.PermManageGyms),
		GymTrainer: u.HasPermission(auth.PermGymTrainer),
	}
	perms.AnyAdmin = perms.ManageGym || perms.ManageGyms || perms.GymTrainer
	return Member{User: u, Perms: perms}
}

type MembersResponse struct {
	Gym        Gym      `json:"gym"`
	Members    []Member `json:"members"`
	AdminCount int      `json:"adminCount"`
	UserCount  int      `json:"userCount"`
}

func NewMembersResponse(gym Gym, users []auth.User) MembersResponse {
	resp := MembersResponse{
		Gym:     gym,
		Members: make([]Member, 0, len(users)),
	}
	for _, u := range users {
		m := newMember(u)
		if m.Perms.AnyAdmin {
			resp.AdminCount++
		} else {
			resp.UserCount++
		}
		resp.Members = append(resp.Members, m)
	}
	return resp
}

type NewMemberRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// NewMemberResponse carries the generated password, it is only ever shown once.
type NewMemberResponse struct {
	User     auth.User `json:"user"`
	Password string    `json:"password"`
}
