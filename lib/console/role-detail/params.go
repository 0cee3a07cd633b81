package roledetail

import "github.com/gofiber/fiber/v2"

// RouteParams доступ к параметрам текущего маршрута
type RouteParams interface {
	Get(key string) string
}

// FiberParams параметры маршрута fiber
type FiberParams struct {
	Ctx *fiber.Ctx
}

func (p FiberParams) Get(key string) string {
	return p.Ctx.Params(key)
}

// MapParams параметры маршрута, заданные явно
type MapParams map[string]string

func (p MapParams) Get(key string) string {
	return p[key]
}
