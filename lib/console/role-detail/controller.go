package roledetail

import (
	apimodels "console-backend/models/api"
	subjectapimodels "console-backend/models/api/subject"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const RoleParam = "idRole"

var ErrRoleNotSelected = errors.New("роль не выбрана")

// HTTPDoer выполняет http запросы к api консоли
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RoleDetailSubjectsCtrl контроллер вкладки "Субъекты" карточки роли.
// Создается на каждую активацию представления, владелец - обработчик представления.
type RoleDetailSubjectsCtrl struct {
	roleID string
	client HTTPDoer
}

func NewRoleDetailSubjectsCtrl(params RouteParams, client HTTPDoer) *RoleDetailSubjectsCtrl {
	return &RoleDetailSubjectsCtrl{
		roleID: params.Get(RoleParam),
		client: client,
	}
}

func (c *RoleDetailSubjectsCtrl) RoleID() string {
	return c.roleID
}

type SubjectsPage struct {
	Subjects []subjectapimodels.SubjectView
	RowCount int64
	Page     int
	Limit    int
}

func (p SubjectsPage) HasNext() bool {
	return int64(p.Page*p.Limit) < p.RowCount
}

type subjectsResponse struct {
	apimodels.Response
	Data     []subjectapimodels.SubjectView `json:"data"`
	RowCount int64                          `json:"row_count"`
}

// LoadSubjects получает субъектов роли через api
func (c *RoleDetailSubjectsCtrl) LoadSubjects(ctx context.Context, baseURL, authHeader string, page, limit int) (SubjectsPage, error) {
	if c.roleID == "" {
		return SubjectsPage{}, ErrRoleNotSelected
	}
	page, limit = apimodels.Pagination{Page: page, Limit: limit}.GetPage()
	logger := log.
		WithField("role_id", c.roleID).
		WithField("page", page)

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	uri := fmt.Sprintf("%s/api/v1/roles/%s/subjects?%s", strings.TrimSuffix(baseURL, "/"), url.PathEscape(c.roleID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return SubjectsPage{}, errors.Wrap(err, "ошибка формирования запроса")
	}
	req.Header.Set("Accept", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		logger.WithError(err).Error("ошибка запроса субъектов роли")
		return SubjectsPage{}, errors.Wrap(err, "ошибка запроса субъектов роли")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return SubjectsPage{}, errors.Wrap(err, "ошибка чтения ответа")
	}
	result := subjectsResponse{}
	decodeErr := json.Unmarshal(body, &result)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// тело ошибки может быть не json, например страница прокси
		msg := ""
		if decodeErr == nil {
			msg = result.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return SubjectsPage{}, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		logger.
			WithField("status", resp.StatusCode).
			WithField("response", string(body)).
			WithError(decodeErr).
			Error("ошибка разбора ответа api")
		return SubjectsPage{}, errors.Wrapf(decodeErr, "некорректный ответ api (%d)", resp.StatusCode)
	}
	if result.Status != apimodels.StatusSuccess {
		return SubjectsPage{}, &APIError{StatusCode: resp.StatusCode, Message: result.Message}
	}
	return SubjectsPage{
		Subjects: result.Data,
		RowCount: result.RowCount,
		Page:     page,
		Limit:    limit,
	}, nil
}

// APIError ответ api с ошибкой
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api вернул ошибку (%d): %s", e.StatusCode, e.Message)
}
