package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
	appErrors "github.com/noah-isme/school-services/pkg/errors"
)

type schoolCheckerStub struct {
	known  map[int64]bool
	checks []int64
	err    error
}

func (s *schoolCheckerStub) Exists(ctx context.Context, id int64) (bool, error) {
	s.checks = append(s.checks, id)
	if s.err != nil {
		return false, s.err
	}
	return s.known[id], nil
}

type userRepoStub struct {
	users  map[int64]*models.User
	nextID int64
	writes int
	checks []int64
}

func newUserRepoStub(users ...models.User) *userRepoStub {
	stub := &userRepoStub{users: map[int64]*models.User{}, nextID: 100}
	for i := range users {
		u := users[i]
		stub.users[u.ID] = &u
	}
	return stub
}

func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.filter(func(models.User) bool { return true }), nil
}

func (s *userRepoStub) ListBySchool(ctx context.Context, schoolID int64) ([]models.User, error) {
	return s.filter(func(u models.User) bool { return u.SchoolID == schoolID }), nil
}

func (s *userRepoStub) ListBySchoolAndRole(ctx context.Context, schoolID int64, role models.UserRole) ([]models.User, error) {
	return s.filter(func(u models.User) bool { return u.SchoolID == schoolID && u.Role == role }), nil
}

func (s *userRepoStub) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		found := *u
		return &found, nil
	}
	return nil, sql.ErrNoRows
}

func (s *userRepoStub) Exists(ctx context.Context, id int64) (bool, error) {
	s.checks = append(s.checks, id)
	_, ok := s.users[id]
	return ok, nil
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	s.writes++
	s.nextID++
	user.ID = s.nextID
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	s.writes++
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *userRepoStub) Delete(ctx context.Context, id int64) error {
	if _, ok := s.users[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.users, id)
	return nil
}

func (s *userRepoStub) filter(keep func(models.User) bool) []models.User {
	result := make([]models.User, 0)
	for id := int64(0); id <= s.nextID; id++ {
		if u, ok := s.users[id]; ok && keep(*u) {
			result = append(result, *u)
		}
	}
	return result
}

func TestUserServiceCreateValidationOrder(t *testing.T) {
	cases := []struct {
		name    string
		req     dto.UserRequest
		code    string
		message string
	}{
		{"missing role", dto.UserRequest{Name: "Ana", Email: "ana@school.test", SchoolID: 1}, appErrors.ErrValidation.Code, "Name, Email and Role are required"},
		{"missing fields before unknown school", dto.UserRequest{Email: "ana@school.test", Role: "Student", SchoolID: 9}, appErrors.ErrValidation.Code, "Name, Email and Role are required"},
		{"unknown role", dto.UserRequest{Name: "Ana", Email: "ana@school.test", Role: "Janitor", SchoolID: 1}, appErrors.ErrValidation.Code, "Role must be one of Student, Teacher, Director"},
		{"parent role", dto.UserRequest{Name: "Ana", Email: "ana@school.test", Role: "Parent", SchoolID: 1}, appErrors.ErrValidation.Code, "Use parent endpoint: /api/v1/Parent"},
		{"unknown school", dto.UserRequest{Name: "Ana", Email: "ana@school.test", Role: "Student", SchoolID: 9}, appErrors.ErrNotFound.Code, "School not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newUserRepoStub()
			svc := NewUserService(repo, &schoolCheckerStub{known: map[int64]bool{1: true}}, nil, nil)

			_, err := svc.Create(context.Background(), tc.req)
			requireMessage(t, err, tc.code, tc.message)
			assert.Zero(t, repo.writes)
		})
	}
}

func TestUserServiceCreateInvalidEmail(t *testing.T) {
	schools := &schoolCheckerStub{known: map[int64]bool{1: true}}
	svc := NewUserService(newUserRepoStub(), schools, nil, nil)

	_, err := svc.Create(context.Background(), dto.UserRequest{Name: "Ana", Email: "not-an-email", Role: "Student", SchoolID: 1})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Empty(t, schools.checks)
}

func TestUserServiceCreateRoundTrip(t *testing.T) {
	svc := NewUserService(newUserRepoStub(), &schoolCheckerStub{known: map[int64]bool{1: true}}, nil, nil)

	created, err := svc.Create(context.Background(), dto.UserRequest{Name: "Ana", Email: "ana@school.test", Role: "Teacher", SchoolID: 1})
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: created.ID, Name: "Ana", Email: "ana@school.test", Role: models.RoleTeacher, SchoolID: 1}, *fetched)
}

func TestUserServiceUpdateSkipsUnchangedSchool(t *testing.T) {
	repo := newUserRepoStub(models.User{ID: 5, Name: "Ana", Email: "ana@school.test", Role: models.RoleStudent, SchoolID: 3})
	schools := &schoolCheckerStub{known: map[int64]bool{1: true}}
	svc := NewUserService(repo, schools, nil, nil)

	updated, err := svc.Update(context.Background(), 5, dto.UserRequest{ID: 5, Name: "Ana Maria", Email: "ana@school.test", Role: "Student", SchoolID: 3})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Empty(t, schools.checks)

	_, err = svc.Update(context.Background(), 5, dto.UserRequest{Name: "Ana Maria", Email: "ana@school.test", Role: "Student", SchoolID: 4})
	requireMessage(t, err, appErrors.ErrNotFound.Code, "School not found")
	assert.Equal(t, []int64{4}, schools.checks)
	assert.Equal(t, int64(3), repo.users[5].SchoolID)

	_, err = svc.Update(context.Background(), 5, dto.UserRequest{Name: "Ana Maria", Email: "ana@school.test", Role: "Student", SchoolID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.users[5].SchoolID)
}

func TestUserServiceUpdateIDMismatch(t *testing.T) {
	repo := newUserRepoStub(models.User{ID: 5, Name: "Ana", Email: "ana@school.test", Role: models.RoleStudent, SchoolID: 3})
	svc := NewUserService(repo, &schoolCheckerStub{}, nil, nil)

	_, err := svc.Update(context.Background(), 5, dto.UserRequest{ID: 6, Name: "Ana", Email: "ana@school.test", Role: "Student", SchoolID: 3})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Zero(t, repo.writes)
}

func TestUserServiceSchoolListings(t *testing.T) {
	repo := newUserRepoStub(
		models.User{ID: 1, Name: "T1", Email: "t1@s.test", Role: models.RoleTeacher, SchoolID: 1},
		models.User{ID: 2, Name: "S1", Email: "s1@s.test", Role: models.RoleStudent, SchoolID: 1},
		models.User{ID: 3, Name: "S2", Email: "s2@s.test", Role: models.RoleStudent, SchoolID: 1},
		models.User{ID: 4, Name: "S3", Email: "s3@s.test", Role: models.RoleStudent, SchoolID: 2},
	)
	svc := NewUserService(repo, &schoolCheckerStub{}, nil, nil)

	all, err := svc.ListBySchool(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	teachers, err := svc.ListTeachers(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, teachers, 1)

	students, err := svc.ListStudents(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, students, 2)
}

func TestUserServiceSchoolCheckFailure(t *testing.T) {
	svc := NewUserService(newUserRepoStub(), &schoolCheckerStub{err: errors.New("timeout")}, nil, nil)

	_, err := svc.Create(context.Background(), dto.UserRequest{Name: "Ana", Email: "ana@school.test", Role: "Student", SchoolID: 1})
	assert.ErrorIs(t, err, appErrors.ErrInternal)
}

type parentRepoStub struct {
	parents map[int64]*models.Parent
	nextID  int64
	writes  int
}

func newParentRepoStub(parents ...models.Parent) *parentRepoStub {
	stub := &parentRepoStub{parents: map[int64]*models.Parent{}, nextID: 10}
	for i := range parents {
		p := parents[i]
		stub.parents[p.ID] = &p
	}
	return stub
}

func (s *parentRepoStub) List(ctx context.Context) ([]models.Parent, error) {
	return s.ListBySchool(ctx, 0)
}

func (s *parentRepoStub) ListBySchool(ctx context.Context, schoolID int64) ([]models.Parent, error) {
	result := make([]models.Parent, 0)
	for id := int64(0); id <= s.nextID; id++ {
		if p, ok := s.parents[id]; ok && (schoolID == 0 || p.SchoolID == schoolID) {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (s *parentRepoStub) FindByID(ctx context.Context, id int64) (*models.Parent, error) {
	if p, ok := s.parents[id]; ok {
		found := *p
		return &found, nil
	}
	return nil, sql.ErrNoRows
}

func (s *parentRepoStub) Create(ctx context.Context, parent *models.Parent) error {
	s.writes++
	s.nextID++
	parent.ID = s.nextID
	stored := *parent
	s.parents[parent.ID] = &stored
	return nil
}

func (s *parentRepoStub) Update(ctx context.Context, parent *models.Parent) error {
	s.writes++
	stored := *parent
	s.parents[parent.ID] = &stored
	return nil
}

func (s *parentRepoStub) Delete(ctx context.Context, id int64) error {
	if _, ok := s.parents[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.parents, id)
	return nil
}

func TestParentServiceCreateMissingReferences(t *testing.T) {
	users := newUserRepoStub(models.User{ID: 40, Name: "Kid", Email: "kid@s.test", Role: models.RoleStudent, SchoolID: 1})
	schools := &schoolCheckerStub{known: map[int64]bool{1: true}}

	cases := []struct {
		name    string
		req     dto.ParentRequest
		code    string
		message string
	}{
		{"missing email", dto.ParentRequest{Name: "Rui", SchoolID: 1, StudentID: 40}, appErrors.ErrValidation.Code, "Name and Email are required"},
		{"unknown school", dto.ParentRequest{Name: "Rui", Email: "rui@home.test", SchoolID: 2, StudentID: 40}, appErrors.ErrNotFound.Code, "School not found"},
		{"unknown student", dto.ParentRequest{Name: "Rui", Email: "rui@home.test", SchoolID: 1, StudentID: 41}, appErrors.ErrNotFound.Code, "Student not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newParentRepoStub()
			svc := NewParentService(repo, schools, users, nil, nil)

			_, err := svc.Create(context.Background(), tc.req)
			requireMessage(t, err, tc.code, tc.message)
			assert.Zero(t, repo.writes)
			assert.Empty(t, repo.parents)
		})
	}
}

func TestParentServiceCreateAndStudent(t *testing.T) {
	users := newUserRepoStub(models.User{ID: 40, Name: "Kid", Email: "kid@s.test", Role: models.RoleStudent, SchoolID: 1})
	svc := NewParentService(newParentRepoStub(), &schoolCheckerStub{known: map[int64]bool{1: true}}, users, nil, nil)

	created, err := svc.Create(context.Background(), dto.ParentRequest{Name: "Rui", Email: "rui@home.test", SchoolID: 1, StudentID: 40})
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Parent{ID: created.ID, Name: "Rui", Email: "rui@home.test", SchoolID: 1, StudentID: 40}, *fetched)

	student, err := svc.Student(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kid", student.Name)

	_, err = svc.Student(context.Background(), 999)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestParentServiceUpdateSkipsUnchangedReferences(t *testing.T) {
	// School 3 and student 77 no longer exist; an update keeping them must still succeed.
	repo := newParentRepoStub(models.Parent{ID: 2, Name: "Rui", Email: "rui@home.test", SchoolID: 3, StudentID: 77})
	users := newUserRepoStub(models.User{ID: 40, Name: "Kid", Email: "kid@s.test", Role: models.RoleStudent, SchoolID: 1})
	schools := &schoolCheckerStub{known: map[int64]bool{1: true}}
	svc := NewParentService(repo, schools, users, nil, nil)

	updated, err := svc.Update(context.Background(), 2, dto.ParentRequest{ID: 2, Name: "Rui Costa", Email: "rui@home.test", SchoolID: 3, StudentID: 77})
	require.NoError(t, err)
	assert.Equal(t, "Rui Costa", updated.Name)
	assert.Empty(t, schools.checks)
	assert.Empty(t, users.checks)

	_, err = svc.Update(context.Background(), 2, dto.ParentRequest{Name: "Rui Costa", Email: "rui@home.test", SchoolID: 3, StudentID: 78})
	requireMessage(t, err, appErrors.ErrNotFound.Code, "Student not found")
	assert.Empty(t, schools.checks)
	assert.Equal(t, []int64{78}, users.checks)
	assert.Equal(t, 1, repo.writes)

	_, err = svc.Update(context.Background(), 2, dto.ParentRequest{Name: "Rui Costa", Email: "rui@home.test", SchoolID: 1, StudentID: 40})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, schools.checks)
	assert.Equal(t, int64(40), repo.parents[2].StudentID)
}

type schoolRepoStub struct {
	schools map[int64]*models.School
	nextID  int64
}

func (s *schoolRepoStub) List(ctx context.Context) ([]models.School, error) {
	result := make([]models.School, 0)
	for id := int64(1); id <= s.nextID; id++ {
		if school, ok := s.schools[id]; ok {
			result = append(result, *school)
		}
	}
	return result, nil
}

func (s *schoolRepoStub) FindByID(ctx context.Context, id int64) (*models.School, error) {
	if school, ok := s.schools[id]; ok {
		found := *school
		return &found, nil
	}
	return nil, sql.ErrNoRows
}

func (s *schoolRepoStub) Create(ctx context.Context, school *models.School) error {
	s.nextID++
	school.ID = s.nextID
	stored := *school
	s.schools[school.ID] = &stored
	return nil
}

func (s *schoolRepoStub) Update(ctx context.Context, school *models.School) error {
	stored := *school
	s.schools[school.ID] = &stored
	return nil
}

func (s *schoolRepoStub) Delete(ctx context.Context, id int64) error {
	if _, ok := s.schools[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.schools, id)
	return nil
}

func TestSchoolServiceLifecycle(t *testing.T) {
	svc := NewSchoolService(&schoolRepoStub{schools: map[int64]*models.School{}}, nil, nil)

	_, err := svc.Create(context.Background(), dto.SchoolRequest{Address: "Main St 1"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	created, err := svc.Create(context.Background(), dto.SchoolRequest{Name: "North High", Address: "Main St 1"})
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *fetched)

	updated, err := svc.Update(context.Background(), created.ID, dto.SchoolRequest{ID: created.ID, Name: "North High", Address: "Main St 2"})
	require.NoError(t, err)
	assert.Equal(t, "Main St 2", updated.Address)

	schools, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, schools, 1)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
