package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/shared"
	"github.com/urfave/cli/v3"
)

type userView struct {
	ID       string `json:"id"`
	Sequence int    `json:"sequence"`
	Name     string `json:"name"`
	Surname  string `json:"surname,omitempty"`
	Email    string `json:"email"`
	Category string `json:"category,omitempty"`
	Role     string `json:"role"`
	Photo    string `json:"photo,omitempty"`
}

func newUserView(u *models.User) userView {
	return userView{
		ID:       u.ID(),
		Sequence: u.Sequence(),
		Name:     u.Name(),
		Surname:  u.Surname(),
		Email:    u.Email(),
		Category: u.Category(),
		Role:     u.Role().String(),
		Photo:    u.Photo(),
	}
}

// UsersList prints active users, optionally filtered by role.
func (r *Runner) UsersList(ctx context.Context, cmd *cli.Command) error {
	store, err := r.Store()
	if err != nil {
		return err
	}

	criteria := map[string]any{}
	if role := cmd.String("role"); role != "" {
		parsed, err := models.ParseRole(role)
		if err != nil {
			return err
		}
		criteria["role"] = parsed
	}

	users, err := store.Users.List(criteria)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	users = limit(users, int(cmd.Int("limit")), r.config.UI.PageSize)

	if cmd.Bool("json") {
		views := make([]userView, len(users))
		for i, u := range users {
			views[i] = newUserView(u)
		}
		return r.writeJSON(views, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Users (%d)", len(users)))
	for _, u := range users {
		r.writePlain("#%-4d %-24s %-28s %s\n", u.Sequence(), u.FullName(), u.Email(), u.Role())
	}
	return nil
}

// UsersAdd creates a user from flags.
func (r *Runner) UsersAdd(ctx context.Context, cmd *cli.Command) error {
	store, err := r.Store()
	if err != nil {
		return err
	}

	user := models.NewUser(0, cmd.String("email"), cmd.String("name"))
	user.SetSurname(cmd.String("surname"))
	user.SetCategory(cmd.String("category"))
	user.SetPhoto(cmd.String("photo"))

	role, err := models.ParseRole(cmd.String("role"))
	if err != nil {
		return err
	}
	user.SetRole(role)

	if err := store.Users.Create(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("user created", "id", user.ID(), "email", user.Email())
	r.writePlain("✓ Created user #%d %s <%s>\n", user.Sequence(), user.FullName(), user.Email())
	return nil
}

// UsersRemove soft-deletes a user by --id or --email.
func (r *Runner) UsersRemove(ctx context.Context, cmd *cli.Command) error {
	store, err := r.Store()
	if err != nil {
		return err
	}

	id, email := cmd.String("id"), cmd.String("email")
	switch {
	case id == "" && email == "":
		return fmt.Errorf("%w: either --id or --email must be provided", shared.ErrMissingArgument)
	case id != "" && email != "":
		return fmt.Errorf("%w: cannot specify both --id and --email", shared.ErrInvalidArgument)
	case email != "":
		user, err := store.Users.GetByEmail(email)
		if err != nil {
			return err
		}
		id = user.ID()
	}

	if err := store.Users.Delete(id); err != nil {
		return fmt.Errorf("failed to remove user: %w", err)
	}

	r.logger.Info("user removed", "id", id)
	r.writePlain("✓ Removed user %s\n", id)
	return nil
}

// limit truncates items to n, falling back to def when n is not positive.
func limit[T any](items []T, n, def int) []T {
	if n <= 0 {
		n = def
	}
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
