package utils

import "service-tasks/pkg/constants"

func IsAdmin(role string) bool { return role == constants.RoleAdmin }

// IsRegionScoped - роли, которые видят только заявки своего региона.
func IsRegionScoped(role string) bool {
	switch role {
	case constants.RoleRegionalManager, constants.RoleOperator, constants.RoleEngineer:
		return true
	}
	return false
}

// ScopeRegion - регион, которым ограничен список заявок пользователя.
// Пустая строка или "Україна" означает все регионы.
func ScopeRegion(role, userRegion, requested string) string {
	if IsRegionScoped(role) && userRegion != "" && userRegion != constants.RegionAll {
		return userRegion
	}
	if requested == "" {
		return constants.RegionAll
	}
	return requested
}
