package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) QueryParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.QueryParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания параметров запроса")
		return errors.New("не удалось получить параметры запроса")
	}
	return nil
}

// GetID идентификатор из параметра маршрута, должен быть uuid
func (c *BaseAPIController) GetID(ctx *fiber.Ctx, param string) (string, error) {
	value := ctx.Params(param)
	if value == "" {
		return "", errors.Errorf("не указан параметр %v", param)
	}
	if _, err := uuid.Parse(value); err != nil {
		return "", errors.Errorf("некорректный параметр %v", param)
	}
	return value, nil
}
