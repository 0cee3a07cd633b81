package apiv1

import (
	"console-backend/controllers"
	subjecthandler "console-backend/lib/subjects"
	"console-backend/middleware"
	apimodels "console-backend/models/api"
	subjectapimodels "console-backend/models/api/subject"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type subjectApiController struct {
	controllers.BaseAPIController
}

func InitSubjectApiRouters(app *fiber.App) {
	controller := subjectApiController{}
	app.Route("subjects", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
	})
}

// @Summary Создать субъекта
// @Tags Субъекты
// @Description Создать субъекта (пользователь или учетные данные)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		subjectapimodels.CreateSubject	true	"request body"
// @Success 201 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/subjects [post]
func (c *subjectApiController) create(ctx *fiber.Ctx) error {
	var payload subjectapimodels.CreateSubject
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := subjecthandler.Instance.Create(middleware.GetUserScope(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Список субъектов
// @Tags Субъекты
// @Description Список субъектов области доступа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]subjectapimodels.SubjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/subjects/list [post]
func (c *subjectApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := subjecthandler.Instance.List(middleware.GetUserScope(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Получить субъекта
// @Tags Субъекты
// @Description Получить субъекта по ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id					path 		string  true 	"subject ID"
// @Success 200 {object} apimodels.Response{data=subjectapimodels.SubjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/subjects/{id} [get]
func (c *subjectApiController) get(ctx *fiber.Ctx) error {
	subjectID, err := c.GetID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	subject, err := subjecthandler.Instance.GetByID(middleware.GetUserScope(ctx), subjectID)
	if err != nil {
		if errors.Is(err, subjecthandler.ErrSubjectNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(subject))
}
