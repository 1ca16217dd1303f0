package seeders

import "service-tasks/pkg/constants"

// SeedUser - пользователь для начального наполнения.
type SeedUser struct {
	Login  string
	Name   string
	Role   string
	Region string
}

// defaultUsers - по одному пользователю на каждую роль.
var defaultUsers = []SeedUser{
	{Login: "admin", Name: "Адміністратор", Role: constants.RoleAdmin, Region: constants.RegionAll},
	{Login: "operator", Name: "Оператор", Role: constants.RoleOperator, Region: "Київ"},
	{Login: "engineer", Name: "Інженер", Role: constants.RoleEngineer, Region: "Київ"},
	{Login: "warehouse", Name: "Склад", Role: constants.RoleWarehouse, Region: constants.RegionAll},
	{Login: "accountant", Name: "Бухгалтер", Role: constants.RoleAccountant, Region: constants.RegionAll},
	{Login: "buhgalteria", Name: "Бухгалтерія", Role: constants.RoleBuhgalteria, Region: constants.RegionAll},
	{Login: "regional", Name: "Регіональний менеджер", Role: constants.RoleRegionalManager, Region: "Київ"},
}
