package views

import (
	subjectapimodels "console-backend/models/api/subject"
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const dateLayout = "02.01.2006 15:04"

// RoleSubjectsPage страница вкладки "Субъекты" роли, таблица подгружается через htmx
func RoleSubjectsPage(roleID string) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("ru"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.TitleEl(g.Text("Роль: субъекты")),
				h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4")),
			),
			h.Body(
				h.Div(
					h.Class("role-detail"),
					h.H1(g.Text("Субъекты роли")),
					h.P(h.Class("role-id"), g.Textf("ID роли: %s", roleID)),
					h.Div(
						h.ID("role-subjects"),
						hx.Get(SubjectsTableURL(roleID, 1)),
						hx.Trigger("load"),
						hx.Swap("innerHTML"),
						g.Text("Загрузка..."),
					),
				),
			),
		),
	)
}

func SubjectsTableURL(roleID string, page int) string {
	return fmt.Sprintf("/console/roles/%s/subjects/table?page=%d", roleID, page)
}

// SubjectsTable фрагмент таблицы субъектов
func SubjectsTable(roleID string, subjects []subjectapimodels.SubjectView, page int, hasNext bool) g.Node {
	if len(subjects) == 0 {
		return h.P(h.Class("empty"), g.Text("Субъекты не назначены"))
	}
	return h.Div(
		h.Table(
			h.Class("subjects"),
			h.THead(
				h.Tr(
					h.Th(g.Text("Логин")),
					h.Th(g.Text("Отображаемое имя")),
					h.Th(g.Text("Email")),
					h.Th(g.Text("Тип")),
					h.Th(g.Text("Статус")),
					h.Th(g.Text("Дата назначения")),
				),
			),
			h.TBody(
				g.Map(subjects, func(s subjectapimodels.SubjectView) g.Node {
					assignedAt := ""
					if s.AssignedAt != nil {
						assignedAt = s.AssignedAt.Format(dateLayout)
					}
					return h.Tr(
						h.Td(g.Text(s.Name)),
						h.Td(g.Text(s.DisplayName)),
						h.Td(g.Text(s.Email)),
						h.Td(g.Text(s.TypeName)),
						h.Td(g.Text(s.StatusName)),
						h.Td(g.Text(assignedAt)),
					)
				}),
			),
		),
		h.Div(
			h.Class("pager"),
			g.If(page > 1, pagerButton(roleID, page-1, "Назад")),
			g.If(hasNext, pagerButton(roleID, page+1, "Вперед")),
		),
	)
}

func pagerButton(roleID string, page int, title string) g.Node {
	return h.Button(
		hx.Get(SubjectsTableURL(roleID, page)),
		hx.Target("#role-subjects"),
		g.Text(title),
	)
}

// Message фрагмент с сообщением вместо таблицы
func Message(class, text string) g.Node {
	return h.P(h.Class(class), g.Text(text))
}
