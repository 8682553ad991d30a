package handler

import "github.com/gofiber/fiber/v2"

// RegisterRoutes wires the full HTTP surface onto the app.
func RegisterRoutes(app *fiber.App, quiz *QuizHandler, admin *AdminHandler) {
	app.Get("/", quiz.Home)
	app.Get("/quiz", quiz.ShowQuiz)
	app.Post("/quiz", quiz.SubmitQuiz)

	app.Get("/admin", admin.List)
	adminGroup := app.Group("/admin")
	adminGroup.Get("/add", admin.ShowAddForm)
	adminGroup.Post("/add", admin.Create)
	adminGroup.Get("/edit/:id", admin.ShowEditForm)
	adminGroup.Post("/edit/:id", admin.Update)
	adminGroup.Post("/delete/:id", admin.Delete)
}
