package xlsexport

import (
	"console-backend/models"
	dbmodels "console-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportRoleSubjects(t *testing.T) {
	t.Run(`subjects sheet check`, func(t *testing.T) {
		assignedAt := time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)
		list := []dbmodels.RoleSubject{
			{
				Subject: dbmodels.Subject{
					Name:        "alice",
					DisplayName: "Alice",
					Email:       "alice@example.com",
					Type:        models.SubjectTypeUser,
					Status:      models.SubjectEnabledStatus,
				},
				AssignedAt: assignedAt,
			},
		}
		buf, err := impl{}.ExportRoleSubjects("device:operators", list)
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		sheet := "deviceoperators"
		require.Equal(t, []string{sheet}, f.GetSheetList())

		header, err := f.GetCellValue(sheet, "A1")
		require.Nil(t, err)
		require.Equal(t, "Логин", header)

		name, err := f.GetCellValue(sheet, "A2")
		require.Nil(t, err)
		require.Equal(t, "alice", name)

		status, err := f.GetCellValue(sheet, "E2")
		require.Nil(t, err)
		require.Equal(t, "Активен", status)

		assigned, err := f.GetCellValue(sheet, "F2")
		require.Nil(t, err)
		require.Equal(t, "20.05.2024 09:30", assigned)
	})

	t.Run(`sheetName check`, func(t *testing.T) {
		require.Equal(t, "Субъекты", sheetName("[]"))
		require.Len(t, []rune(sheetName("a very long role name that exceeds the excel limit")), 31)
		require.Equal(t, "ops", sheetName("'ops'"))
		require.Equal(t, "Субъекты", sheetName("''"))
		require.Equal(t, "abcdefghijklmnopqrstuvwxyz0123", sheetName("abcdefghijklmnopqrstuvwxyz0123'tail"))
	})

	t.Run(`apostrophe role name exported`, func(t *testing.T) {
		buf, err := impl{}.ExportRoleSubjects("'ops'", nil)
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()
		require.Equal(t, []string{"ops"}, f.GetSheetList())

		header, err := f.GetCellValue("ops", "F1")
		require.Nil(t, err)
		require.Equal(t, "Дата назначения", header)
	})
}
