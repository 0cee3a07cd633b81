package subjecthandler

import (
	"console-backend/db"
	subjectstore "console-backend/lib/subjects/store"
	initchecker "console-backend/lib/utils/init-checker"
	apimodels "console-backend/models/api"
	subjectapimodels "console-backend/models/api/subject"
	dbmodels "console-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrSubjectNotFound = errors.New("субъект не найден")

type Provider interface {
	Create(scopeID string, request subjectapimodels.CreateSubject) (string, error)
	GetByID(scopeID, subjectID string) (subjectapimodels.SubjectView, error)
	List(scopeID string, pagination apimodels.Pagination) (list []subjectapimodels.SubjectView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("db", db.DB)
	Instance = impl{
		subjectStore: subjectstore.NewInstance(db.DB),
	}
}

type impl struct {
	subjectStore subjectstore.Provider
}

func (i impl) Create(scopeID string, request subjectapimodels.CreateSubject) (string, error) {
	rec := dbmodels.Subject{
		ScopeID:     scopeID,
		Name:        request.Name,
		DisplayName: request.DisplayName,
		Email:       request.Email,
		Type:        request.GetType(),
		Status:      request.GetStatus(),
	}
	id, err := i.subjectStore.Create(rec)
	if err != nil {
		log.
			WithField("scope_id", scopeID).
			WithField("subject_name", request.Name).
			WithError(err).
			Error("ошибка создания субъекта")
		return "", err
	}
	return id, nil
}

func (i impl) GetByID(scopeID, subjectID string) (subjectapimodels.SubjectView, error) {
	rec, err := i.subjectStore.GetByID(scopeID, subjectID)
	if err != nil {
		log.
			WithField("scope_id", scopeID).
			WithField("subject_id", subjectID).
			WithError(err).
			Error("ошибка поиска субъекта")
		return subjectapimodels.SubjectView{}, err
	}
	if rec == nil {
		return subjectapimodels.SubjectView{}, ErrSubjectNotFound
	}
	return rec.ToModel(), nil
}

func (i impl) List(scopeID string, pagination apimodels.Pagination) (list []subjectapimodels.SubjectView, rowCount int64, err error) {
	rowCount, err = i.subjectStore.Count(scopeID)
	if err != nil {
		log.WithField("scope_id", scopeID).WithError(err).Error("ошибка получения количества субъектов")
		return nil, 0, err
	}
	page, limit := pagination.GetPage()
	recList, err := i.subjectStore.GetList(scopeID, page, limit)
	if err != nil {
		log.WithField("scope_id", scopeID).WithError(err).Error("ошибка получения списка субъектов")
		return nil, 0, err
	}
	list = make([]subjectapimodels.SubjectView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}
