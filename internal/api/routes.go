package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Root)
	app.Get("/healthz", handler.Health)

	root := app.Group(handler.config.APIPrefix)

	auth := root.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh", handler.AuthRequired, handler.Refresh)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Put("/me", handler.AuthRequired, handler.UpdateMe)

	projects := root.Group("/projects", handler.AuthRequired)
	projects.Post("/", handler.CreateProject)
	projects.Get("/", handler.ListProjects)
	projects.Get("/:id", handler.GetProject)
	projects.Put("/:id", handler.UpdateProject)
	projects.Delete("/:id", handler.DeleteProject)

	tasks := projects.Group("/:id/tasks")
	tasks.Post("/", handler.CreateTask)
	tasks.Get("/", handler.ListTasks)
	tasks.Get("/:taskId", handler.GetTask)
	tasks.Put("/:taskId", handler.UpdateTask)
	tasks.Delete("/:taskId", handler.DeleteTask)

	export := root.Group("/export", handler.AuthRequired)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)

	admin := root.Group("/admin", handler.AuthRequired, handler.SuperuserRequired)
	admin.Get("/users", handler.AdminListUsers)
	admin.Put("/users/:id", handler.AdminSetUserActive)
}
