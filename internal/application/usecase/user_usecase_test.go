package usecase_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// fakeUserRepo repo en memoria que replica el constraint único de username.
type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsernameAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	c := *user
	r.users[user.ID] = &c
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(search string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if search != "" && !strings.Contains(u.Username, search) {
			continue
		}
		c := *u
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Username == user.Username {
			return domain.ErrUsernameAlreadyExists
		}
	}
	c := *user
	r.users[user.ID] = &c
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func TestUserCreate_RolPorDefectoStaff(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	out, err := uc.Create(dto.CreateUserRequest{Username: "mgarcia"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, out.Role, "sin rol explícito el usuario queda como staff")
	assert.NotEmpty(t, out.ID)
}

func TestUserCreate_UsernameRequerido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Create(dto.CreateUserRequest{Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserCreate_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(dto.CreateUserRequest{Username: "mgarcia"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateUserRequest{Username: "mgarcia", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
	assert.Len(t, repo.users, 1, "el duplicado no debe persistirse")
}

func TestUserUpdate_UsernameTomado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	a, err := uc.Create(dto.CreateUserRequest{Username: "mgarcia"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateUserRequest{Username: "jperez"})
	require.NoError(t, err)

	taken := "jperez"
	_, err = uc.Update(a.ID, dto.UpdateUserRequest{Username: &taken})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestUserUpdate_NoEncontrado(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	username := "nuevo"
	out, err := uc.Update("no-existe", dto.UpdateUserRequest{Username: &username})
	require.NoError(t, err)
	assert.Nil(t, out, "actualizar un usuario inexistente devuelve nil sin error")
}
