package console

import (
	"bytes"
	roledetail "console-backend/lib/console/role-detail"
	"console-backend/lib/console/views"
	"console-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	g "maragu.dev/gomponents"
)

type roleDetailController struct {
	apiBaseURL string
	client     roledetail.HTTPDoer
	pageSize   int
}

// InitRoleDetailRouters представление "Роль - Субъекты".
// Контроллер представления создается на каждый запрос и живет до отправки ответа.
func InitRoleDetailRouters(app *fiber.App, apiBaseURL string, client roledetail.HTTPDoer, pageSize int) {
	controller := roleDetailController{
		apiBaseURL: apiBaseURL,
		client:     client,
		pageSize:   pageSize,
	}
	app.Route("roles/:"+roledetail.RoleParam+"/subjects", func(router fiber.Router) {
		router.Get("", controller.page)
		router.Get("table", controller.table)
	})
}

func (c *roleDetailController) page(ctx *fiber.Ctx) error {
	ctrl := roledetail.NewRoleDetailSubjectsCtrl(roledetail.FiberParams{Ctx: ctx}, c.client)
	return render(ctx, fiber.StatusOK, views.RoleSubjectsPage(ctrl.RoleID()))
}

func (c *roleDetailController) table(ctx *fiber.Ctx) error {
	ctrl := roledetail.NewRoleDetailSubjectsCtrl(roledetail.FiberParams{Ctx: ctx}, c.client)
	authHeader := ""
	if token := middleware.GetRawToken(ctx); token != "" {
		authHeader = "Bearer " + token
	}
	subjectsPage, err := ctrl.LoadSubjects(ctx.UserContext(), c.apiBaseURL, authHeader, ctx.QueryInt("page", 1), c.pageSize)
	if err != nil {
		if errors.Is(err, roledetail.ErrRoleNotSelected) {
			return render(ctx, fiber.StatusOK, views.Message("empty", err.Error()))
		}
		var apiErr *roledetail.APIError
		if errors.As(err, &apiErr) {
			return render(ctx, fiber.StatusOK, views.Message("error", apiErr.Message))
		}
		log.
			WithField("role_id", ctrl.RoleID()).
			WithError(err).
			Error("ошибка загрузки субъектов роли")
		return render(ctx, fiber.StatusOK, views.Message("error", "не удалось загрузить субъектов роли"))
	}
	return render(ctx, fiber.StatusOK, views.SubjectsTable(ctrl.RoleID(), subjectsPage.Subjects, subjectsPage.Page, subjectsPage.HasNext()))
}

func render(ctx *fiber.Ctx, status int, node g.Node) error {
	buf := new(bytes.Buffer)
	if err := node.Render(buf); err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Status(status).Send(buf.Bytes())
}
