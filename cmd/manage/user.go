package main

import (
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/2beens/workoutmanager/internal/auth"
	"github.com/2beens/workoutmanager/internal/config"
	"github.com/2beens/workoutmanager/pkg"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var (
	userEmail    string
	userPassword string
	userGymID    int
	userPerms    []string
	userLanguage string
)

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Add a user; a password is generated when --password is not given",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, password, err := newUser(args[0])
		if err != nil {
			return err
		}

		return withPool(cmd.Context(), func(_ *config.Config, pool *pgxpool.Pool) error {
			added, err := auth.NewUsersRepo(pool).Add(cmd.Context(), user)
			if err != nil {
				return fmt.Errorf("add user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added user %q with id %d\n", added.Username, added.ID)
			if userPassword == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "password: %s\n", password)
			}
			return nil
		})
	},
}

var userPermsCmd = &cobra.Command{
	Use:   "perms <username> [permission...]",
	Short: "Replace the permissions of a user",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		perms := args[1:]
		if err := validPermissions(perms); err != nil {
			return err
		}

		return withPool(cmd.Context(), func(_ *config.Config, pool *pgxpool.Pool) error {
			repo := auth.NewUsersRepo(pool)
			user, err := repo.ByUsername(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get user %s: %w", args[0], err)
			}
			if err := repo.SetPermissions(cmd.Context(), user.ID, perms); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %q permissions: %v\n", user.Username, perms)
			return nil
		})
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userEmail, "email", "", "user email")
	userAddCmd.Flags().StringVar(&userPassword, "password", "", "user password")
	userAddCmd.Flags().IntVar(&userGymID, "gym", 0, "gym id of the user")
	userAddCmd.Flags().StringSliceVar(&userPerms, "perm", nil, "permissions, e.g. --perm manage_gym,manage_exercises")
	userAddCmd.Flags().StringVar(&userLanguage, "language", "en", "user language")

	userCmd.AddCommand(userAddCmd, userPermsCmd)
}

var knownPermissions = []string{
	auth.PermManageGyms,
	auth.PermManageGym,
	auth.PermGymTrainer,
	auth.PermAddGym,
	auth.PermChangeGym,
	auth.PermDeleteGym,
	auth.PermManageExercises,
	auth.PermManageNutrition,
}

func validPermissions(perms []string) error {
	for _, p := range perms {
		if !slices.Contains(knownPermissions, p) {
			return fmt.Errorf("unknown permission: %s", p)
		}
	}
	return nil
}

// newUser builds the user from the add flags and returns it with its plain password.
func newUser(username string) (auth.User, string, error) {
	if username == "" {
		return auth.User{}, "", fmt.Errorf("username empty")
	}
	if err := validPermissions(userPerms); err != nil {
		return auth.User{}, "", err
	}

	password := userPassword
	if password == "" {
		generated, err := pkg.GeneratePassword()
		if err != nil {
			return auth.User{}, "", fmt.Errorf("generate password: %w", err)
		}
		password = generated
	}

	hash, err := pkg.HashPassword(password)
	if err != nil {
		return auth.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := auth.User{
		Username:     username,
		Email:        userEmail,
		PasswordHash: hash,
		Permissions:  userPerms,
		Language:     userLanguage,
	}
	if userGymID > 0 {
		gymID := userGymID
		user.GymID = &gymID
	}
	return user, password, nil
}
