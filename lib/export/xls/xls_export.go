package xlsexport

import (
	"bytes"
	dbmodels "console-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportRoleSubjects(roleName string, list []dbmodels.RoleSubject) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const dateLayout = "02.01.2006 15:04"

var subjectHeaders = []string{"Логин", "Отображаемое имя", "Email", "Тип", "Статус", "Дата назначения"}

func (i impl) ExportRoleSubjects(roleName string, list []dbmodels.RoleSubject) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, subjectHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeSubjectData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, sheetName(roleName)); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа xlsx")
	}
	return f.WriteToBuffer()
}

func writeSubjectData(f *excelize.File, sheet string, list []dbmodels.RoleSubject, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(subjectHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.Name,
			item.DisplayName,
			item.Email,
			item.Type.ToHuman(),
			item.Status.ToHuman(),
			"",
		}
		if !item.AssignedAt.IsZero() {
			values[5] = item.AssignedAt.Format(dateLayout)
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

// имя листа excel ограничено 31 символом, не допускает []:*?/\
// и не может начинаться или заканчиваться апострофом
func sheetName(roleName string) string {
	name := []rune(strings.Trim(roleName, "'"))
	result := make([]rune, 0, len(name))
	for _, r := range name {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			continue
		}
		result = append(result, r)
		if len(result) == 31 {
			break
		}
	}
	// после обрезки по длине апостроф может снова оказаться в конце
	trimmed := strings.Trim(string(result), "'")
	if trimmed == "" {
		return "Субъекты"
	}
	return trimmed
}
