package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr  string `default:"" env:"APP_HOST"`
		Port        int    `default:"8080"  env:"APP_PORT"`
		SwaggerFile string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"console" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret string `default:"" env:"AUTH_JWT_SECRET"`
	}
	Console struct {
		// адрес api, к которому обращается консоль
		APIBaseURL        string `default:"http://127.0.0.1:8080" env:"CONSOLE_API_BASE_URL"`
		RequestTimeoutSec int    `default:"10" env:"CONSOLE_REQUEST_TIMEOUT_SEC"`
		PageSize          int    `default:"20" env:"CONSOLE_PAGE_SIZE"`
	}
	Export struct {
		FontDir string `default:"static/font/" env:"EXPORT_FONT_DIR"`
	}
	Preload struct {
		// при заполнении в области создается встроенная роль admin
		ScopeID string `default:"" env:"PRELOAD_SCOPE_ID"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	if conf.Auth.JWTSecret == "" {
		panic("не задан AUTH_JWT_SECRET")
	}
	Conf = conf
}
