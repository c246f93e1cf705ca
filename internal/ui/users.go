package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/playharmony/internal/i18n"
	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/nav"
)

var (
	_ nav.Activator = (*UserList)(nil)
)

// UserList shows every active user.
type UserList struct {
	env    *Env
	list   list.Model
	loaded bool
}

func NewUserList(env *Env) *UserList {
	return &UserList{env: env, list: newList(env, nil)}
}

func (s *UserList) Title() string { return s.env.Loc.T(i18n.KeyUsersTitle) }

func (s *UserList) Init() tea.Cmd {
	if s.loaded {
		return nil
	}
	if err := s.reload(); err != nil {
		return fail(err)
	}
	return nil
}

// OnActivate reloads after a form or another screen above this one is popped.
func (s *UserList) OnActivate() {
	if err := s.reload(); err != nil {
		s.env.Logger.Error("failed to reload users", "error", err)
	}
}

func (s *UserList) reload() error {
	users, err := s.env.Users.List(map[string]any{})
	if err != nil {
		return err
	}

	items := make([]list.Item, len(users))
	for i, u := range users {
		items[i] = userItem{user: u}
	}
	s.list.SetItems(items)
	s.loaded = true
	return nil
}

func (s *UserList) selected() *models.User {
	if item, ok := s.list.SelectedItem().(userItem); ok {
		return item.user
	}
	return nil
}

func (s *UserList) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, s.env.keys.add):
			s.env.Nav.Push(NewUserForm(s.env, nil))
			return nil
		case key.Matches(msg, s.env.keys.edit):
			if user := s.selected(); user != nil {
				s.env.Nav.Push(NewUserForm(s.env, user))
			}
			return nil
		case key.Matches(msg, s.env.keys.delete):
			return s.delete()
		}
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return cmd
}

func (s *UserList) delete() tea.Cmd {
	user := s.selected()
	if user == nil {
		return nil
	}
	if err := s.env.Users.Delete(user.ID()); err != nil {
		return fail(err)
	}

	if current, err := s.env.Session.CurrentUser(); err == nil && current.ID() == user.ID() {
		s.env.Session.Logout()
	}

	if err := s.reload(); err != nil {
		return fail(err)
	}
	return notify(s.env.Loc.T(i18n.KeyDeleted))
}

func (s *UserList) SetSize(width, height int) { s.list.SetSize(width, height) }

func (s *UserList) View() string {
	return listView(s.env, s.list)
}

func (s *UserList) ShortHelp() []key.Binding {
	return []key.Binding{s.env.keys.add, s.env.keys.edit, s.env.keys.delete}
}

const (
	userName = iota
	userSurname
	userEmail
	userCategory
	userPhoto
)

// UserForm adds a user, or edits one when built with an existing user.
type UserForm struct {
	env  *Env
	user *models.User
	role models.Role
	form form
}

func NewUserForm(env *Env, user *models.User) *UserForm {
	f := &UserForm{
		env:  env,
		user: user,
		role: models.RoleStudent,
		form: newForm(env.keys,
			env.Loc.T(i18n.KeyNameLabel),
			env.Loc.T(i18n.KeySurnameLabel),
			env.Loc.T(i18n.KeyEmailLabel),
			env.Loc.T(i18n.KeyCategoryLabel),
			env.Loc.T(i18n.KeyPhotoLabel),
		),
	}

	if user != nil {
		f.role = user.Role()
		f.form.SetValue(userName, user.Name())
		f.form.SetValue(userSurname, user.Surname())
		f.form.SetValue(userEmail, user.Email())
		f.form.SetValue(userCategory, user.Category())
		f.form.SetValue(userPhoto, user.Photo())
	}
	return f
}

func (f *UserForm) Title() string {
	if f.user != nil {
		return f.env.Loc.T(i18n.KeyEditUserTitle)
	}
	return f.env.Loc.T(i18n.KeyAddUserTitle)
}

func (f *UserForm) Init() tea.Cmd { return textinput.Blink }

func (f *UserForm) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, f.env.keys.save):
			return f.submit()
		case key.Matches(msg, f.env.keys.role):
			f.role = f.role.Next()
			return nil
		}
	}
	return f.form.Update(msg)
}

func (f *UserForm) submit() tea.Cmd {
	user := f.user
	if user == nil {
		user = models.NewUser(0, f.form.Value(userEmail), f.form.Value(userName))
	} else {
		user.SetName(f.form.Value(userName))
		user.SetEmail(f.form.Value(userEmail))
	}
	user.SetSurname(f.form.Value(userSurname))
	user.SetCategory(f.form.Value(userCategory))
	user.SetPhoto(f.form.Value(userPhoto))
	user.SetRole(f.role)

	var err error
	if f.user == nil {
		err = f.env.Users.Create(user)
	} else {
		err = f.env.Users.Update(user)
	}
	if err != nil {
		f.form.SetError(err)
		return nil
	}

	f.env.Logger.Info("user saved", "id", user.ID(), "email", user.Email())
	f.env.Nav.Clear()
	f.env.Nav.Push(NewUserList(f.env))
	return notify(f.env.Loc.T(i18n.KeySaved))
}

func (f *UserForm) View() string {
	role := styles.label.Render(f.env.Loc.T(i18n.KeyRoleLabel)) + "  " + styles.ok.Render(f.role.String())
	return f.form.View() + "\n\n  " + role
}

func (f *UserForm) ShortHelp() []key.Binding {
	return []key.Binding{f.env.keys.save, f.env.keys.next, f.env.keys.role}
}
