package apiv1

import (
	"bytes"
	rolehandler "console-backend/lib/roles"
	"console-backend/models"
	apimodels "console-backend/models/api"
	roleapimodels "console-backend/models/api/role"
	subjectapimodels "console-backend/models/api/subject"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeRoleHandler struct {
	roles      map[string]roleapimodels.RoleView
	subjects   map[string][]subjectapimodels.SubjectView
	assigned   map[string]bool
	lastPage   apimodels.Pagination
	createName string
}

func newFakeRoleHandler() *fakeRoleHandler {
	return &fakeRoleHandler{
		roles:    map[string]roleapimodels.RoleView{},
		subjects: map[string][]subjectapimodels.SubjectView{},
		assigned: map[string]bool{},
	}
}

func (f *fakeRoleHandler) Create(scopeID string, request roleapimodels.CreateRole) (string, error) {
	for _, role := range f.roles {
		if role.Name == request.Name {
			return "", rolehandler.ErrRoleExists
		}
	}
	f.createName = request.Name
	id := uuid.NewString()
	f.roles[id] = roleapimodels.RoleView{ID: id, RoleData: request.RoleData}
	return id, nil
}

func (f *fakeRoleHandler) GetByID(scopeID, roleID string) (roleapimodels.RoleView, error) {
	role, ok := f.roles[roleID]
	if !ok {
		return roleapimodels.RoleView{}, rolehandler.ErrRoleNotFound
	}
	return role, nil
}

func (f *fakeRoleHandler) List(scopeID string, pagination apimodels.Pagination) ([]roleapimodels.RoleView, int64, error) {
	list := []roleapimodels.RoleView{}
	for _, role := range f.roles {
		list = append(list, role)
	}
	return list, int64(len(list)), nil
}

func (f *fakeRoleHandler) Delete(scopeID, roleID string) error {
	if _, ok := f.roles[roleID]; !ok {
		return rolehandler.ErrRoleNotFound
	}
	delete(f.roles, roleID)
	return nil
}

func (f *fakeRoleHandler) ListSubjects(scopeID, roleID string, pagination apimodels.Pagination) ([]subjectapimodels.SubjectView, int64, error) {
	if _, ok := f.roles[roleID]; !ok {
		return nil, 0, rolehandler.ErrRoleNotFound
	}
	f.lastPage = pagination
	return f.subjects[roleID], int64(len(f.subjects[roleID])), nil
}

func (f *fakeRoleHandler) AssignSubject(scopeID, roleID, subjectID string) error {
	if _, ok := f.roles[roleID]; !ok {
		return rolehandler.ErrRoleNotFound
	}
	if f.assigned[roleID+subjectID] {
		return rolehandler.ErrAlreadyAssigned
	}
	f.assigned[roleID+subjectID] = true
	return nil
}

func (f *fakeRoleHandler) UnassignSubject(scopeID, roleID, subjectID string) error {
	if !f.assigned[roleID+subjectID] {
		return rolehandler.ErrNotAssigned
	}
	delete(f.assigned, roleID+subjectID)
	return nil
}

func (f *fakeRoleHandler) ExportSubjects(scopeID, roleID string, format models.ExportFormat) (*bytes.Buffer, error) {
	if format != models.ExportXlsx && format != models.ExportPdf {
		return nil, errors.Wrap(rolehandler.ErrExportFormat, string(format))
	}
	return bytes.NewBufferString("file:" + string(format)), nil
}

func newRoleApp(handler rolehandler.Provider) *fiber.App {
	rolehandler.Instance = handler
	app := fiber.New()
	InitRoleApiRouters(app)
	return app
}

func decodeResponse(t *testing.T, resp *http.Response) apimodels.ScrollerResponse {
	result := apimodels.ScrollerResponse{}
	body, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	require.Nil(t, json.Unmarshal(body, &result))
	return result
}

func TestRoleApi(t *testing.T) {
	t.Run(`create role`, func(t *testing.T) {
		fake := newFakeRoleHandler()
		app := newRoleApp(fake)

		body := `{"name":"operators","permissions":["device:read","*:*"]}`
		req := httptest.NewRequest(http.MethodPost, "/roles", bytes.NewBufferString(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		require.Equal(t, "operators", fake.createName)

		req = httptest.NewRequest(http.MethodPost, "/roles", bytes.NewBufferString(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err = app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run(`create role with bad permission`, func(t *testing.T) {
		app := newRoleApp(newFakeRoleHandler())
		req := httptest.NewRequest(http.MethodPost, "/roles", bytes.NewBufferString(`{"name":"x","permissions":["device"]}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, apimodels.StatusFail, decodeResponse(t, resp).Status)
	})

	t.Run(`invalid role id`, func(t *testing.T) {
		app := newRoleApp(newFakeRoleHandler())
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/roles/42/subjects", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`unknown role`, func(t *testing.T) {
		app := newRoleApp(newFakeRoleHandler())
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/roles/"+uuid.NewString(), nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		require.Equal(t, rolehandler.ErrRoleNotFound.Error(), decodeResponse(t, resp).Message)
	})

	t.Run(`list role subjects`, func(t *testing.T) {
		fake := newFakeRoleHandler()
		roleID := uuid.NewString()
		fake.roles[roleID] = roleapimodels.RoleView{ID: roleID}
		fake.subjects[roleID] = []subjectapimodels.SubjectView{
			{ID: "s-1", SubjectData: subjectapimodels.SubjectData{Name: "alice"}},
		}
		app := newRoleApp(fake)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/roles/"+roleID+"/subjects?page=2&limit=5", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		result := decodeResponse(t, resp)
		require.Equal(t, apimodels.StatusSuccess, result.Status)
		require.Equal(t, int64(1), result.RowCount)
		require.Equal(t, apimodels.Pagination{Page: 2, Limit: 5}, fake.lastPage)
	})

	t.Run(`assign and unassign subject`, func(t *testing.T) {
		fake := newFakeRoleHandler()
		roleID := uuid.NewString()
		subjectID := uuid.NewString()
		fake.roles[roleID] = roleapimodels.RoleView{ID: roleID}
		app := newRoleApp(fake)
		uri := "/roles/" + roleID + "/subjects/" + subjectID

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, uri, nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest(http.MethodPost, uri, nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusConflict, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest(http.MethodDelete, uri, nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest(http.MethodDelete, uri, nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run(`export subjects`, func(t *testing.T) {
		app := newRoleApp(newFakeRoleHandler())
		uri := "/roles/" + uuid.NewString() + "/subjects/export"

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, uri+"?format=pdf", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
		body, err := io.ReadAll(resp.Body)
		require.Nil(t, err)
		require.Equal(t, "file:pdf", string(body))

		resp, err = app.Test(httptest.NewRequest(http.MethodGet, uri, nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "role_subjects.xlsx")

		resp, err = app.Test(httptest.NewRequest(http.MethodGet, uri+"?format=csv", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
