package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/empleados-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/empleados-api/pkg/jwt"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

// buildMiddlewareApp construye una app Fiber mínima con AuthMiddleware y un
// handler dummy que devuelve el user_id resuelto.
func buildMiddlewareApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
	})
	return app
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildMiddlewareApp()
	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"credencial ausente es 401, distinto del 400 de credencial inválida")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna400(t *testing.T) {
	app := buildMiddlewareApp()
	resp := doProtected(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"credencial presente pero inválida es 400, distinto del 401 de credencial ausente")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenExpirado_Retorna400(t *testing.T) {
	app := buildMiddlewareApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, -1)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthMiddleware_ConPrefijoBearer_ExtraeUserID(t *testing.T) {
	app := buildMiddlewareApp()
	resp := doProtected(t, app, "Bearer "+validToken(t))

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, testUserID, body["user_id"])
}

func TestAuthMiddleware_SinPrefijoBearer_TokenCrudoAceptado(t *testing.T) {
	// El prefijo "Bearer " es opcional: el valor crudo del header también vale.
	app := buildMiddlewareApp()
	resp := doProtected(t, app, validToken(t))

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, testUserID, body["user_id"])
}

func TestAuthMiddleware_HeaderSoloBearer_Retorna401(t *testing.T) {
	app := buildMiddlewareApp()
	resp := doProtected(t, app, "Bearer ")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "prefijo sin token cuenta como credencial ausente")
}
