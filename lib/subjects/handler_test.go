package subjecthandler

import (
	"console-backend/models"
	apimodels "console-backend/models/api"
	subjectapimodels "console-backend/models/api/subject"
	dbmodels "console-backend/models/db"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

type memSubjectStore struct {
	subjects map[string]dbmodels.Subject
}

func (s *memSubjectStore) Create(rec dbmodels.Subject) (string, error) {
	rec.ID = fmt.Sprintf("subj-%d", len(s.subjects)+1)
	s.subjects[rec.ID] = rec
	return rec.ID, nil
}

func (s *memSubjectStore) GetByID(scopeID, subjectID string) (*dbmodels.Subject, error) {
	rec, ok := s.subjects[subjectID]
	if !ok || rec.ScopeID != scopeID {
		return nil, nil
	}
	return &rec, nil
}

func (s *memSubjectStore) GetList(scopeID string, page, limit int) ([]dbmodels.Subject, error) {
	list := []dbmodels.Subject{}
	for _, rec := range s.subjects {
		if rec.ScopeID == scopeID {
			list = append(list, rec)
		}
	}
	sort.Slice(list, func(a, b int) bool { return list[a].Name < list[b].Name })
	offset := (page - 1) * limit
	if offset >= len(list) {
		return []dbmodels.Subject{}, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

func (s *memSubjectStore) Count(scopeID string) (int64, error) {
	var count int64
	for _, rec := range s.subjects {
		if rec.ScopeID == scopeID {
			count++
		}
	}
	return count, nil
}

func TestSubjectHandler(t *testing.T) {
	i := impl{subjectStore: &memSubjectStore{subjects: map[string]dbmodels.Subject{}}}

	t.Run(`create with defaults check`, func(t *testing.T) {
		id, err := i.Create("scope-1", subjectapimodels.CreateSubject{SubjectData: subjectapimodels.SubjectData{Name: "bob"}})
		require.Nil(t, err)

		view, err := i.GetByID("scope-1", id)
		require.Nil(t, err)
		require.Equal(t, "bob", view.Name)
		require.Equal(t, string(models.SubjectTypeUser), view.Type)
		require.Equal(t, "Пользователь", view.TypeName)
		require.Equal(t, "Активен", view.StatusName)
	})

	t.Run(`foreign scope check`, func(t *testing.T) {
		id, err := i.Create("scope-2", subjectapimodels.CreateSubject{SubjectData: subjectapimodels.SubjectData{Name: "eve"}})
		require.Nil(t, err)

		_, err = i.GetByID("scope-1", id)
		require.ErrorIs(t, err, ErrSubjectNotFound)
	})

	t.Run(`list check`, func(t *testing.T) {
		_, err := i.Create("scope-1", subjectapimodels.CreateSubject{SubjectData: subjectapimodels.SubjectData{Name: "alice", Type: "CREDENTIAL"}})
		require.Nil(t, err)

		list, rowCount, err := i.List("scope-1", apimodels.Pagination{Page: 1, Limit: 1})
		require.Nil(t, err)
		require.Equal(t, int64(2), rowCount)
		require.Len(t, list, 1)
		require.Equal(t, "alice", list[0].Name)
		require.Equal(t, "Учетные данные", list[0].TypeName)
	})
}
