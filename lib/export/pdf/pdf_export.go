package pdfexport

import (
	"bytes"
	dbmodels "console-backend/models/db"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type Provider interface {
	ExportRoleSubjects(roleName string, list []dbmodels.RoleSubject) (*bytes.Buffer, error)
}

var Instance Provider

// NewHandler fontDir - каталог с DejaVuSans.ttf, при пустом значении используется встроенный шрифт без кириллицы
func NewHandler(fontDir string) {
	Instance = impl{
		fontDir: fontDir,
	}
}

type impl struct {
	fontDir string
}

const (
	utf8Font   = "DejaVu"
	dateLayout = "02.01.2006 15:04"
)

var (
	subjectHeaders = []string{"Логин", "Отображаемое имя", "Email", "Тип", "Статус", "Дата назначения"}
	latinHeaders   = []string{"Name", "Display name", "Email", "Type", "Status", "Assigned at"}
	colWidths      = []float64{35, 45, 55, 35, 30, 77}
)

func (i impl) ExportRoleSubjects(roleName string, list []dbmodels.RoleSubject) (buf *bytes.Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ExportRoleSubjects panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("L", "mm", "A4", i.fontDir)
	headers := subjectHeaders
	family := "Helvetica"
	tr := func(s string) string { return s }
	if i.fontDir != "" {
		pdf.AddUTF8Font(utf8Font, "", "DejaVuSans.ttf")
		pdf.AddUTF8Font(utf8Font, "B", "DejaVuSans-Bold.ttf")
		family = utf8Font
	} else {
		headers = latinHeaders
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.SetTitle(tr(roleName), i.fontDir != "")
	pdf.SetCreationDate(time.Now())
	pdf.AddPage()
	pdf.SetFont(family, "B", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, tr(fmt.Sprintf("%v (%d)", roleName, len(list))), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(family, "B", 10)
	pdf.SetFillColor(221, 235, 247)
	for idx, header := range headers {
		pdf.CellFormat(colWidths[idx], 8, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 10)
	for _, item := range list {
		assignedAt := ""
		if !item.AssignedAt.IsZero() {
			assignedAt = item.AssignedAt.Format(dateLayout)
		}
		values := []string{
			item.Name,
			item.DisplayName,
			item.Email,
			string(item.Type),
			string(item.Status),
			assignedAt,
		}
		if i.fontDir != "" {
			values[3] = item.Type.ToHuman()
			values[4] = item.Status.ToHuman()
		}
		for idx, value := range values {
			pdf.CellFormat(colWidths[idx], 7, tr(value), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf = new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return buf, nil
}

// FontsPresent проверяет наличие файлов шрифтов в каталоге
func FontsPresent(fontDir string) bool {
	if fontDir == "" {
		return false
	}
	for _, name := range []string{"DejaVuSans.ttf", "DejaVuSans-Bold.ttf"} {
		matches, err := filepath.Glob(filepath.Join(fontDir, name))
		if err != nil || len(matches) == 0 {
			return false
		}
	}
	return true
}
