package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/empleados-api/internal/application/auth"
	"github.com/jhoicas/empleados-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	EmployeeUC *usecase.EmployeeUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público, en la raíz del servicio)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Employees (protegido, requiere Bearer Token)
	employees := app.Group("/api/employees", AuthMiddleware(deps.JWTSecret))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:emp_no", employeeHandler.GetByEmpNo)
	employees.Put("/:emp_no", employeeHandler.Update)
	employees.Delete("/:emp_no", employeeHandler.Delete)
}
