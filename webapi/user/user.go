// Package user exposes the user routes: registration, login, lookup,
// listing, and favored promotion.
package user

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pixlab/transferapi/pkg/dto"
	usersvc "github.com/pixlab/transferapi/pkg/service/user"
	"github.com/pixlab/transferapi/webapi/common"
)

// Routes registers the user endpoints under /api/users.
func Routes(app *fiber.App, svc *usersvc.Service) {
	g := app.Group("/api/users")
	g.Post("/register", Register(svc))
	g.Post("/login", Login(svc))
	g.Get("/", ListUsers(svc))
	g.Get("/:id", GetUser(svc))
	g.Put("/:id/favored", PromoteToFavored(svc))
}

// Register handles POST /api/users/register. Every failure, including a
// duplicate email, answers 400 with the rule's message.
func Register(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.RegisterUser](c, "name, email, and password are required")
		if input == nil {
			return err
		}
		created, err := svc.Register(c.Context(), input)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		return common.SuccessJSON(c, fiber.StatusCreated, "user registered", created)
	}
}

// Login handles POST /api/users/login. Any failure answers 401, so a
// probe cannot tell a missing account from a bad password by status code.
func Login(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input dto.LoginUser
		if err := c.BodyParser(&input); err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "invalid request body")
		}
		u, err := svc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusUnauthorized, err.Error())
		}
		return common.SuccessJSON(c, fiber.StatusOK, "login successful", u)
	}
}

// GetUser handles GET /api/users/:id.
func GetUser(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseIDParam(c, "id")
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "user ID must be a valid number")
		}
		u, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusNotFound, err.Error())
		}
		return common.SuccessJSON(c, fiber.StatusOK, "", u)
	}
}

// ListUsers handles GET /api/users.
func ListUsers(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.Context())
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusInternalServerError, err.Error())
		}
		return common.SuccessJSON(c, fiber.StatusOK, "", users)
	}
}

// PromoteToFavored handles PUT /api/users/:id/favored. Re-promoting an
// already-favored user succeeds with the same state.
func PromoteToFavored(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseIDParam(c, "id")
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "user ID must be a valid number")
		}
		u, err := svc.PromoteToFavored(c.Context(), id)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusNotFound, err.Error())
		}
		return common.SuccessJSON(c, fiber.StatusOK, "user promoted to favored", u)
	}
}
