package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vocalwork/src/internal/delivery/http"
)

type RouteConfig struct {
	App                 *fiber.App
	AuthController      *http.AuthController
	UserController      *http.UserController
	JobController       *http.JobController
	RecordingController *http.RecordingController
	SessionMiddleware   fiber.Handler
	AdminMiddleware     fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	c.App.Post("/auth/v1/login", c.AuthController.Login)
	c.App.Post("/auth/v1/logout", c.AuthController.Logout)

	c.SetupSessionRoutes()
	c.SetupAdminRoutes()
}

func (c *RouteConfig) SetupSessionRoutes() {
	session := c.App.Group("", c.SessionMiddleware)

	session.Get("/users/v1/profile", c.AuthController.GetProfile)
	session.Post("/users/v1/offer/accept", c.UserController.AcceptOffer)
	session.Get("/wallet/v1", c.UserController.GetWallet)

	session.Get("/jobs/v1", c.JobController.ListJobs)
	session.Get("/jobs/v1/:id", c.JobController.GetJob)
	session.Post("/jobs/v1/:id/take", c.JobController.TakeJob)
	session.Post("/jobs/v1/:id/complete", c.JobController.CompleteJob)

	session.Post("/recordings/v1/:jobId/start", c.RecordingController.Start)
	session.Post("/recordings/v1/:jobId/stop", c.RecordingController.Stop)
	session.Post("/recordings/v1/:jobId/retry", c.RecordingController.Retry)
	session.Post("/recordings/v1/:jobId/submit", c.RecordingController.Submit)
	session.Post("/recordings/v1/:jobId/cancel", c.RecordingController.Cancel)
	session.Get("/recordings/v1/:jobId", c.RecordingController.GetState)
}

func (c *RouteConfig) SetupAdminRoutes() {
	admin := c.App.Group("/admin/v1", c.SessionMiddleware, c.AdminMiddleware)

	admin.Get("/users", c.UserController.ListUsers)
	admin.Post("/users", c.UserController.AddUser)
	admin.Patch("/users/:id", c.UserController.UpdateUser)
	admin.Delete("/users/:id", c.UserController.DeleteUser)
	admin.Post("/users/:id/offer", c.UserController.GenerateOffer)

	admin.Post("/jobs", c.JobController.AddJob)
}
