package rbac

import (
	"console-backend/models"
	"regexp"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

type Provider interface {
	GetRuleFunc(method, path string) (models.RbacFunc, bool)
	RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error
	GetPermissions(role models.UserRole) map[models.Module][]models.Permission
}

var Instance Provider

var pathParamRe = regexp.MustCompile(`\{[^}]+?\}`)

func NewHandler() {
	i := newImpl()
	i.initRules()
	Instance = i
}

func newImpl() *impl {
	return &impl{
		rules:       map[HTTPMethod]*PathRule{},
		permissions: map[models.UserRole]map[models.Module][]models.Permission{},
	}
}

type impl struct {
	rules       map[HTTPMethod]*PathRule
	permissions map[models.UserRole]map[models.Module][]models.Permission
}

func (i *impl) GetRuleFunc(method, path string) (models.RbacFunc, bool) {
	normalizedPath := normalizePath(path)
	for _, httpMethod := range []HTTPMethod{HTTPMethod(strings.ToUpper(method)), ALL} {
		if handler, found := i.findInPathRule(i.rules[httpMethod], normalizedPath); found {
			return handler, true
		}
	}
	return nil, false
}

func (i *impl) RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error {
	path, method, err := parseSwaggerPattern(swaggerPattern)
	if err != nil {
		return err
	}

	// матрица разрешений для консоли
	for _, role := range roles {
		if _, ok := i.permissions[role]; !ok {
			i.permissions[role] = map[models.Module][]models.Permission{}
		}
		permissions := i.permissions[role][module]
		if slices.Contains(permissions, permission) {
			continue
		}
		i.permissions[role][module] = append(permissions, permission)
	}

	if _, exists := i.rules[method]; !exists {
		i.rules[method] = &PathRule{
			Exact:    make(map[string]models.RbacFunc),
			Patterns: []PatternRule{},
		}
	}
	if handler == nil {
		handler = AllowByRoleFunc(roles)
	}
	pathRule := i.rules[method]
	if isExactPath(path) {
		pathRule.Exact[path] = handler
		return nil
	}
	pattern, err := pathToRegex(path)
	if err != nil {
		return errors.Wrapf(err, "некорректный шаблон пути (%v)", path)
	}
	pathRule.Patterns = append(pathRule.Patterns, PatternRule{
		Pattern: pattern,
		Handler: handler,
	})
	return nil
}

func (i *impl) GetPermissions(role models.UserRole) map[models.Module][]models.Permission {
	result := map[models.Module][]models.Permission{}
	for module, permissions := range i.permissions[role] {
		result[module] = slices.Clone(permissions)
	}
	return result
}

func (i *impl) mustRegister(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string) {
	if err := i.RegisterRule(module, permission, roles, swaggerPattern, nil); err != nil {
		panic(err.Error())
	}
}

func isExactPath(path string) bool {
	return !strings.ContainsAny(path, "{*")
}

func pathToRegex(path string) (*regexp.Regexp, error) {
	pattern := regexp.QuoteMeta(path)
	pattern = strings.ReplaceAll(pattern, "\\{", "{")
	pattern = strings.ReplaceAll(pattern, "\\}", "}")
	// {param} -> один сегмент пути
	pattern = pathParamRe.ReplaceAllString(pattern, `([^/]+)`)
	pattern = strings.ReplaceAll(pattern, `\*`, `.*?`)
	return regexp.Compile("^" + pattern + "$")
}

func (i *impl) findInPathRule(pathRule *PathRule, path string) (models.RbacFunc, bool) {
	if pathRule == nil {
		return nil, false
	}
	if handler, exists := pathRule.Exact[path]; exists {
		return handler, true
	}
	for _, patternRule := range pathRule.Patterns {
		if patternRule.Pattern.MatchString(path) {
			return patternRule.Handler, true
		}
	}
	return nil, false
}

func AllowFunc() models.RbacFunc {
	return func(scopeID, userID string, role models.UserRole, uri string) bool {
		return true
	}
}

func AllowByRoleFunc(accessRoles []models.UserRole) models.RbacFunc {
	allowMap := map[models.UserRole]bool{}
	for _, role := range accessRoles {
		allowMap[role] = true
	}
	return func(scopeID, userID string, role models.UserRole, uri string) bool {
		return allowMap[role]
	}
}

// парсит строку в формате "/api/v1/roles [post]"
func parseSwaggerPattern(pattern string) (path string, method HTTPMethod, err error) {
	pattern = strings.TrimSpace(pattern)
	bracketStart := strings.LastIndex(pattern, "[")
	bracketEnd := strings.LastIndex(pattern, "]")
	if bracketStart == -1 || bracketEnd == -1 || bracketEnd < bracketStart {
		return "", "", errors.Errorf("Method not provided for pattern (%v)", pattern)
	}
	path = strings.TrimSpace(pattern[:bracketStart])
	method = HTTPMethod(strings.ToUpper(strings.TrimSpace(pattern[bracketStart+1 : bracketEnd])))
	return normalizePath(path), method, nil
}

// маршрутизация fiber не учитывает регистр, поэтому правила сравниваются в нижнем регистре
func normalizePath(path string) string {
	path = strings.ToLower(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}
