package initializers

import (
	"console-backend/config"
	"console-backend/fiberlog"
	pdfexport "console-backend/lib/export/pdf"
	xlsexport "console-backend/lib/export/xls"
	"console-backend/lib/rbac"
	rolehandler "console-backend/lib/roles"
	subjecthandler "console-backend/lib/subjects"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	rbac.NewHandler()
	xlsexport.NewHandler()
	initPdfExport(config.Conf.Export.FontDir)
	// зависит от обработчиков выгрузки
	rolehandler.NewHandler()
	subjecthandler.NewHandler()
}

func initPdfExport(fontDir string) {
	if !pdfexport.FontsPresent(fontDir) {
		log.WithField("font_dir", fontDir).Warn("шрифты для pdf не найдены, используется встроенный шрифт")
		fontDir = ""
	}
	pdfexport.NewHandler(fontDir)
}
