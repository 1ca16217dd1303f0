package routes

import (
	"github.com/labstack/echo/v4"

	"service-tasks/internal/controllers"
)

func runAreaRouter(secureGroup *echo.Group, areaCtrl *controllers.AreaController, settingsCtrl *controllers.ColumnSettingsController) {
	secureGroup.GET("/areas/:area/tasks", areaCtrl.ListTasks)

	secureGroup.GET("/column-settings/:area", settingsCtrl.Get)
	secureGroup.PUT("/column-settings/:area", settingsCtrl.Save)
}
