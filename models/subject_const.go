package models

type SubjectType string

const (
	SubjectTypeUser       SubjectType = "USER"
	SubjectTypeCredential SubjectType = "CREDENTIAL"
)

var subjectTypeHumanName = map[SubjectType]string{
	SubjectTypeUser:       "Пользователь",
	SubjectTypeCredential: "Учетные данные",
}

func (r SubjectType) ToHuman() string {
	if human, exist := subjectTypeHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r SubjectType) IsValid() bool {
	_, exist := subjectTypeHumanName[r]
	return exist
}

type SubjectStatus string

const (
	SubjectEnabledStatus  SubjectStatus = "ENABLED"
	SubjectDisabledStatus SubjectStatus = "DISABLED"
)

var subjectStatusHumanName = map[SubjectStatus]string{
	SubjectEnabledStatus:  "Активен",
	SubjectDisabledStatus: "Отключен",
}

func (r SubjectStatus) ToHuman() string {
	if human, exist := subjectStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r SubjectStatus) IsValid() bool {
	_, exist := subjectStatusHumanName[r]
	return exist
}

type ExportFormat string

const (
	ExportXlsx ExportFormat = "xlsx"
	ExportPdf  ExportFormat = "pdf"
)
