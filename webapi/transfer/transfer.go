// Package transfer exposes the transfer routes: execution plus the
// enriched listing and lookup endpoints.
package transfer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pixlab/transferapi/pkg/dto"
	transfersvc "github.com/pixlab/transferapi/pkg/service/transfer"
	"github.com/pixlab/transferapi/webapi/common"
)

// Routes registers the transfer endpoints under /api/transfers.
func Routes(app *fiber.App, svc *transfersvc.Service) {
	g := app.Group("/api/transfers")
	g.Post("/", MakeTransfer(svc))
	g.Get("/", ListTransfers(svc))
	g.Get("/user/:id", ListUserTransfers(svc))
	g.Get("/:id", GetTransfer(svc))
}

// MakeTransfer handles POST /api/transfers. Every business-rule violation
// answers 400 with the rule's message.
func MakeTransfer(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.MakeTransfer](c, "sender, recipient, and amount are required")
		if input == nil {
			return err
		}
		t, err := svc.MakeTransfer(c.Context(), input)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		return common.SuccessJSON(c, fiber.StatusCreated, "transfer completed", t)
	}
}

// ListTransfers handles GET /api/transfers.
func ListTransfers(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		transfers, err := svc.GetAllTransfers(c.Context())
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusInternalServerError, err.Error())
		}
		return common.SuccessJSON(c, fiber.StatusOK, "", transfers)
	}
}

// ListUserTransfers handles GET /api/transfers/user/:id.
func ListUserTransfers(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseIDParam(c, "id")
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "user ID must be a valid number")
		}
		transfers, err := svc.GetTransfersByUser(c.Context(), id)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusNotFound, err.Error())
		}
		return common.SuccessJSON(c, fiber.StatusOK, "", transfers)
	}
}

// GetTransfer handles GET /api/transfers/:id.
func GetTransfer(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseIDParam(c, "id")
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "transfer ID must be a valid number")
		}
		t, err := svc.GetTransferByID(c.Context(), id)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusNotFound, err.Error())
		}
		return common.SuccessJSON(c, fiber.StatusOK, "", t)
	}
}
