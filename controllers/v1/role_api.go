package apiv1

import (
	"console-backend/controllers"
	rolehandler "console-backend/lib/roles"
	"console-backend/middleware"
	"console-backend/models"
	apimodels "console-backend/models/api"
	roleapimodels "console-backend/models/api/role"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type roleApiController struct {
	controllers.BaseAPIController
}

func InitRoleApiRouters(app *fiber.App) {
	controller := roleApiController{}
	app.Route("roles", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Route(":idRole", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Route("subjects", func(subjectsRoute fiber.Router) {
				subjectsRoute.Get("", controller.listSubjects)
				subjectsRoute.Get("export", controller.exportSubjects)
				subjectsRoute.Post(":subjectId", controller.assignSubject)
				subjectsRoute.Delete(":subjectId", controller.unassignSubject)
			})
		})
	})
}

// @Summary Создать роль
// @Tags Роли
// @Description Создать роль
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		roleapimodels.CreateRole	true	"request body"
// @Success 201 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles [post]
func (c *roleApiController) create(ctx *fiber.Ctx) error {
	var payload roleapimodels.CreateRole
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := rolehandler.Instance.Create(middleware.GetUserScope(ctx), payload)
	if err != nil {
		return roleErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Список ролей
// @Tags Роли
// @Description Список ролей области доступа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]roleapimodels.RoleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/list [post]
func (c *roleApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := rolehandler.Instance.List(middleware.GetUserScope(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Получить роль
// @Tags Роли
// @Description Получить роль по ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	idRole				path 		string  true 	"role ID"
// @Success 200 {object} apimodels.Response{data=roleapimodels.RoleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/{idRole} [get]
func (c *roleApiController) get(ctx *fiber.Ctx) error {
	roleID, err := c.GetID(ctx, "idRole")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	role, err := rolehandler.Instance.GetByID(middleware.GetUserScope(ctx), roleID)
	if err != nil {
		return roleErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(role))
}

// @Summary Удалить роль
// @Tags Роли
// @Description Удалить роль вместе с назначениями
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	idRole				path 		string  true 	"role ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/{idRole} [delete]
func (c *roleApiController) delete(ctx *fiber.Ctx) error {
	roleID, err := c.GetID(ctx, "idRole")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = rolehandler.Instance.Delete(middleware.GetUserScope(ctx), roleID); err != nil {
		return roleErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Субъекты роли
// @Tags Роли
// @Description Список субъектов, которым назначена роль
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	idRole				path 		string  true 	"role ID"
// @Param 	page				query 		int  	false 	"page"
// @Param 	limit				query 		int  	false 	"limit"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]subjectapimodels.SubjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/{idRole}/subjects [get]
func (c *roleApiController) listSubjects(ctx *fiber.Ctx) error {
	roleID, err := c.GetID(ctx, "idRole")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var pagination apimodels.Pagination
	if err = c.QueryParser(ctx, &pagination); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := rolehandler.Instance.ListSubjects(middleware.GetUserScope(ctx), roleID, pagination)
	if err != nil {
		return roleErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Назначить роль субъекту
// @Tags Роли
// @Description Назначить роль субъекту
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	idRole				path 		string  true 	"role ID"
// @Param 	subjectId			path 		string  true 	"subject ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/{idRole}/subjects/{subjectId} [post]
func (c *roleApiController) assignSubject(ctx *fiber.Ctx) error {
	roleID, subjectID, err := c.getRoleSubjectIDs(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = rolehandler.Instance.AssignSubject(middleware.GetUserScope(ctx), roleID, subjectID); err != nil {
		return roleErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Снять роль с субъекта
// @Tags Роли
// @Description Снять роль с субъекта
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	idRole				path 		string  true 	"role ID"
// @Param 	subjectId			path 		string  true 	"subject ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/{idRole}/subjects/{subjectId} [delete]
func (c *roleApiController) unassignSubject(ctx *fiber.Ctx) error {
	roleID, subjectID, err := c.getRoleSubjectIDs(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = rolehandler.Instance.UnassignSubject(middleware.GetUserScope(ctx), roleID, subjectID); err != nil {
		return roleErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Выгрузка субъектов роли
// @Tags Роли
// @Description Выгрузка субъектов роли в xlsx или pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	idRole				path 		string  true 	"role ID"
// @Param 	format				query 		string  false 	"xlsx|pdf"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/{idRole}/subjects/export [get]
func (c *roleApiController) exportSubjects(ctx *fiber.Ctx) error {
	roleID, err := c.GetID(ctx, "idRole")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	format := models.ExportFormat(ctx.Query("format", string(models.ExportXlsx)))
	buf, err := rolehandler.Instance.ExportSubjects(middleware.GetUserScope(ctx), roleID, format)
	if err != nil {
		return roleErrorResponse(ctx, err)
	}
	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if format == models.ExportPdf {
		contentType = "application/pdf"
	}
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=\"role_subjects.%s\"", format))
	return ctx.Status(fiber.StatusOK).SendStream(buf, buf.Len())
}

func (c *roleApiController) getRoleSubjectIDs(ctx *fiber.Ctx) (roleID, subjectID string, err error) {
	roleID, err = c.GetID(ctx, "idRole")
	if err != nil {
		return "", "", err
	}
	subjectID, err = c.GetID(ctx, "subjectId")
	if err != nil {
		return "", "", err
	}
	return roleID, subjectID, nil
}

func roleErrorResponse(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, rolehandler.ErrRoleNotFound),
		errors.Is(err, rolehandler.ErrSubjectNotFound),
		errors.Is(err, rolehandler.ErrNotAssigned):
		status = fiber.StatusNotFound
	case errors.Is(err, rolehandler.ErrRoleExists),
		errors.Is(err, rolehandler.ErrAlreadyAssigned):
		status = fiber.StatusConflict
	case errors.Is(err, rolehandler.ErrExportFormat):
		status = fiber.StatusBadRequest
	}
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}
