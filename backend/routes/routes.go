package routes

import (
	"log"

	"smartscore/backend/config"
	"smartscore/backend/controllers"
	"smartscore/backend/middleware"
	"smartscore/backend/models"
	"smartscore/backend/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *log.Logger) {
	roster := services.NewRosterService(db, logger)
	users := services.NewUserService(db, logger)
	imports := services.NewImportService(db, logger)
	exams := services.NewExamService(db, logger)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// Auth routes
	authController := controllers.NewAuthController(users, cfg)
	app.Post("/login", authController.Login)

	// Middleware
	adminOnly := middleware.RequireRole(cfg, models.RoleAdmin)
	staff := middleware.RequireRole(cfg, models.RoleAdmin, models.RoleFaculty)

	// Course routes
	coursesController := controllers.NewCoursesController(roster)
	app.Get("/courses", staff, coursesController.ListCourses)
	app.Post("/courses", adminOnly, coursesController.CreateCourse)

	// Batch routes
	batchesController := controllers.NewBatchesController(roster)
	app.Get("/batches", staff, batchesController.ListBatches)
	app.Post("/batches", adminOnly, batchesController.CreateBatch)
	app.Put("/batches/:batch_id/upgrade", adminOnly, batchesController.UpgradeSemester)
	app.Get("/batches/:batch_id/students", staff, batchesController.ListBatchStudents)

	// Student routes
	studentsController := controllers.NewStudentsController(roster, imports)
	app.Get("/students", staff, studentsController.ListStudents)
	app.Post("/students", adminOnly, studentsController.CreateStudent)
	app.Post("/upload-students", adminOnly, studentsController.UploadStudents)

	// User routes
	userController := controllers.NewUserController(users)
	app.Get("/users", adminOnly, userController.ListUsers)
	app.Post("/users", adminOnly, userController.CreateUser)
	app.Get("/users/:username", staff, userController.GetUser)

	// Exam routes
	examsController := controllers.NewExamsController(exams)
	exam := app.Group("/exams", staff)
	exam.Post("/", examsController.CreateExam)
	exam.Get("/:exam_id", examsController.GetExam)
	exam.Put("/:exam_id/status", examsController.UpdateStatus)
	exam.Get("/:exam_id/drafts", examsController.ListDrafts)
	exam.Post("/:exam_id/drafts", examsController.SaveDraft)
	exam.Get("/:exam_id/reports", examsController.ListReports)
	exam.Post("/:exam_id/reports", examsController.ArchiveReport)
}
