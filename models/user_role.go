package models

type UserRole string

const (
	AdminRole    UserRole = "ADMIN"
	OperatorRole UserRole = "OPERATOR"
	ViewerRole   UserRole = "VIEWER"
)

var roleHumanName = map[UserRole]string{
	AdminRole:    "Администратор",
	OperatorRole: "Оператор",
	ViewerRole:   "Наблюдатель",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}
