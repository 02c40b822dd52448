package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empleados-api/internal/application/auth"
	"github.com/jhoicas/empleados-api/internal/application/usecase"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	apphttp "github.com/jhoicas/empleados-api/internal/interfaces/http"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "empleados-api-test"
	testExpMin    = 60
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byUsername map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	if _, ok := r.byUsername[user.Username]; ok {
		return domain.ErrUsernameAlreadyExists
	}
	u := *user
	r.byUsername[user.Username] = &u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

type fakeEmployeeRepo struct {
	byID map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[string]*entity.Employee{}}
}

func (r *fakeEmployeeRepo) Create(employee *entity.Employee) error {
	for _, e := range r.byID {
		if e.OwnerID == employee.OwnerID && e.EmpNo == employee.EmpNo {
			return domain.ErrDuplicate
		}
	}
	e := *employee
	r.byID[employee.ID] = &e
	return nil
}

func (r *fakeEmployeeRepo) GetByOwnerAndEmpNo(ownerID string, empNo int64) (*entity.Employee, error) {
	for _, e := range r.byID {
		if e.OwnerID == ownerID && e.EmpNo == empNo {
			c := *e
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) ListByOwner(ownerID string) ([]*entity.Employee, error) {
	var list []*entity.Employee
	for _, e := range r.byID {
		if e.OwnerID == ownerID {
			c := *e
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *fakeEmployeeRepo) Update(employee *entity.Employee) error {
	if _, ok := r.byID[employee.ID]; !ok {
		return domain.ErrNotFound
	}
	e := *employee
	r.byID[employee.ID] = &e
	return nil
}

func (r *fakeEmployeeRepo) Delete(ownerID string, empNo int64) error {
	for id, e := range r.byID {
		if e.OwnerID == ownerID && e.EmpNo == empNo {
			delete(r.byID, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye una app Fiber con el router completo sobre repos fake.
func buildTestApp() *fiber.App {
	authUC := auth.NewAuthUseCase(newFakeUserRepo(), auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	employeeUC := usecase.NewEmployeeUseCase(newFakeEmployeeRepo())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		EmployeeUC: employeeUC,
		JWTSecret:  testJWTSecret,
	})
	return app
}

// doJSON lanza una petición con body JSON opcional y header Authorization opcional.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, authHeader string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el body JSON de la respuesta en out.
func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// registerAndLogin registra un usuario y devuelve su token.
func registerAndLogin(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/register", fiber.Map{"username": username, "password": password}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/login", fiber.Map{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}
