package routes

import (
	"github.com/labstack/echo/v4"

	"service-tasks/internal/controllers"
	"service-tasks/pkg/constants"
	"service-tasks/pkg/middleware"
)

func runTaskRouter(
	secureGroup *echo.Group,
	taskCtrl *controllers.TaskController,
	approvalCtrl *controllers.ApprovalController,
	reportCtrl *controllers.ReportController,
	authMW *middleware.AuthMiddleware,
) {
	tasks := secureGroup.Group("/tasks")
	{
		tasks.GET("", taskCtrl.GetTasks)
		tasks.POST("", taskCtrl.CreateTask)
		tasks.GET("/report", reportCtrl.GetReport)
		tasks.GET("/status/:status", taskCtrl.GetTasksByStatus)
		tasks.GET("/:id", taskCtrl.GetTask)
		tasks.PUT("/:id", taskCtrl.UpdateTask)
		tasks.DELETE("/:id", taskCtrl.DeleteTask)
		tasks.GET("/:id/history", taskCtrl.GetHistory)
		tasks.GET("/:id/naryad", reportCtrl.GetNaryad)
		tasks.POST("/:id/approval", approvalCtrl.Decide, authMW.RequireRoles(
			constants.RoleWarehouse,
			constants.RoleAccountant,
			constants.RoleBuhgalteria,
			constants.RoleRegionalManager,
		))
	}
}
