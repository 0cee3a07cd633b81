package apiv1

import (
	"console-backend/controllers"
	"console-backend/lib/rbac"
	"console-backend/middleware"
	apimodels "console-backend/models/api"
	permissionapimodels "console-backend/models/api/permission"

	"github.com/gofiber/fiber/v2"
)

type permissionsApiController struct {
	controllers.BaseAPIController
}

func InitPermissionsApiRouters(app *fiber.App) {
	controller := permissionsApiController{}
	app.Get("permissions", controller.get)
}

// @Summary Разрешения текущего пользователя
// @Tags Разрешения
// @Description Матрица модулей и разрешений роли пользователя, используется консолью для отображения действий
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=permissionapimodels.PermissionsView}
// @Failure 403
// @router /api/v1/permissions [get]
func (c *permissionsApiController) get(ctx *fiber.Ctx) error {
	role := middleware.GetUserRole(ctx)
	result := permissionapimodels.PermissionsView{
		Role:        role,
		RoleName:    role.ToHuman(),
		Permissions: rbac.Instance.GetPermissions(role),
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
