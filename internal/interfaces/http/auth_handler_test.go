package http_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegister_Creado_Retorna201(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/register", fiber.Map{"username": "alice", "password": "password1"}, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
		Data    struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"data"`
	}
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.Message)
	assert.Equal(t, "alice", body.Data.Username)
	assert.NotEmpty(t, body.Data.ID)
}

func TestRegister_UsernameDuplicado_Retorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/register", fiber.Map{"username": "alice", "password": "password1"}, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/register", fiber.Map{"username": "alice", "password": "password2"}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "DUPLICATE_USERNAME")
}

func TestRegister_PasswordCorto_Retorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/register", fiber.Map{"username": "alice", "password": "corto"}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_PasswordIncorrecto_Retorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/register", fiber.Map{"username": "alice", "password": "password1"}, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/login", fiber.Map{"username": "alice", "password": "password2"}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "BAD_CREDENTIALS")
}

func TestLogin_UsuarioInexistente_Retorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/login", fiber.Map{"username": "nadie", "password": "password1"}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_Correcto_DevuelveToken(t *testing.T) {
	app := buildTestApp()
	token := registerAndLogin(t, app, "alice", "password1")
	assert.NotEmpty(t, token)
}
