// Package webapi assembles the Fiber application: middleware, routes, and
// the shared response envelope.
package webapi

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/pixlab/transferapi/pkg/config"
	transfersvc "github.com/pixlab/transferapi/pkg/service/transfer"
	usersvc "github.com/pixlab/transferapi/pkg/service/user"
	"github.com/pixlab/transferapi/webapi/common"
	transferapi "github.com/pixlab/transferapi/webapi/transfer"
	userapi "github.com/pixlab/transferapi/webapi/user"
)

// New builds the Fiber app with all middleware and routes registered.
func New(
	cfg *config.App,
	userSvc *usersvc.Service,
	transferSvc *transfersvc.Service,
	logger *slog.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "transferapi",
		BodyLimit: 10 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorJSON(c, status, err.Error())
		},
	})

	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Cors.Origin,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(requestLogger(logger))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorJSON(c, fiber.StatusTooManyRequests,
				"too many requests from this IP, try again later")
		},
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":   true,
			"message":   "API is up",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "transfer API",
			"health":  "/health",
		})
	})

	userapi.Routes(app, userSvc)
	transferapi.Routes(app, transferSvc)

	// unknown routes
	app.Use(func(c *fiber.Ctx) error {
		return common.ErrorJSON(c, fiber.StatusNotFound, "route not found")
	})

	return app
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		)
		return err
	}
}
