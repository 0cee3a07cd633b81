package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid       = "pid"
	TagIP        = "ip"
	TagMethod    = "method"
	TagPath      = "path"
	TagStatus    = "status"
	TagLatency   = "latency"
	TagRequestID = "request_id"
	TagBody      = "body"
	TagResBody   = "res_body"
	TagUserAgent = "user_agent"
)

// максимальный размер тела запроса/ответа в логе
const maxBodyLen = 2048

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag возвращает значение поля лога
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagRequestID: func(c *fiber.Ctx, _ *data) interface{} {
			if id, ok := c.Locals("requestid").(string); ok {
				return id
			}
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			return truncate(c.Body())
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			if c.GetRespHeader(fiber.HeaderContentType) != fiber.MIMEApplicationJSON {
				return ""
			}
			return truncate(c.Response().Body())
		},
		TagUserAgent: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

func truncate(body []byte) string {
	if len(body) > maxBodyLen {
		return string(body[:maxBodyLen]) + "..."
	}
	return string(body)
}
