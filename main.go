package main

import (
	"console-backend/config"
	"console-backend/controllers/console"
	apiv1 "console-backend/controllers/v1"
	"console-backend/fiberlog"
	"console-backend/initializers"
	"console-backend/middleware"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
)

func main() {
	initializers.InitAllServices()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())

	if _, err := os.Stat(config.Conf.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: config.Conf.App.SwaggerFile,
		}))
	} else {
		log.WithField("file", config.Conf.App.SwaggerFile).Warn("swagger не подключен, файл не найден")
	}

	app.Get("/health", func(ctx *fiber.Ctx) error {
		if err := initializers.PingDB(); err != nil {
			return ctx.SendStatus(fiber.StatusServiceUnavailable)
		}
		return ctx.SendStatus(fiber.StatusOK)
	})

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE",
	}))
	apiV1.Use(middleware.AuthorizationRequired())
	apiV1.Use(middleware.ScopeRequired())
	apiV1.Use(middleware.RbacMiddleware())
	app.Mount("/api/v1", apiV1)
	apiv1.InitRoleApiRouters(apiV1)
	apiv1.InitSubjectApiRouters(apiV1)
	apiv1.InitPermissionsApiRouters(apiV1)

	//консоль
	consoleApp := fiber.New()
	consoleLogCfg := *initializers.LoggerConfig
	consoleLogCfg.Tags = []string{fiberlog.TagMethod, fiberlog.TagPath, fiberlog.TagStatus, fiberlog.TagLatency, fiberlog.TagRequestID}
	consoleApp.Use(fiberlog.New(consoleLogCfg))
	consoleApp.Use(middleware.AuthorizationRequired())
	app.Mount("/console", consoleApp)
	consoleClient := &http.Client{
		Timeout: time.Duration(config.Conf.Console.RequestTimeoutSec) * time.Second,
	}
	console.InitRoleDetailRouters(consoleApp, strings.TrimSuffix(config.Conf.Console.APIBaseURL, "/"), consoleClient, config.Conf.Console.PageSize)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Gracefully shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
