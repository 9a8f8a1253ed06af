package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kj8726/employee-registration/internal/application/registration"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegistrationUC *registration.RegistrationUseCase
	FormFile       string // ruta del documento HTML servido en GET /
}

// Router registra las rutas del servicio.
func Router(app *fiber.App, deps RouterDeps) {
	h := NewEmployeeHandler(deps.RegistrationUC, deps.FormFile)
	app.Get("/", h.Form)
	app.Post("/register", h.Register)
}
