package routes

import (
	"github.com/labstack/echo/v4"

	"service-tasks/internal/controllers"
)

func runAttachmentRouter(group *echo.Group, attachmentCtrl *controllers.AttachmentController) {
	files := group.Group("/files")
	{
		files.POST("/upload/:taskId", attachmentCtrl.Upload)
		files.GET("/task/:taskId", attachmentCtrl.GetByTask)
		files.DELETE("/:fileId", attachmentCtrl.Delete)
	}
}
