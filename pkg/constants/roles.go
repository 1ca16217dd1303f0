package constants

// Роли пользователей.
const (
	RoleAdmin           = "admin"
	RoleOperator        = "operator"
	RoleEngineer        = "engineer"
	RoleWarehouse       = "warehouse"
	RoleAccountant      = "accountant"
	RoleBuhgalteria     = "buhgalteria"
	RoleRegionalManager = "regionalManager"
)

var Roles = []string{
	RoleAdmin,
	RoleOperator,
	RoleEngineer,
	RoleWarehouse,
	RoleAccountant,
	RoleBuhgalteria,
	RoleRegionalManager,
}

// NormalizeRole сводит синонимы ролей к одному значению.
func NormalizeRole(role string) string {
	if role == RoleBuhgalteria {
		return RoleAccountant
	}
	return role
}

// Рабочие области (вкладки интерфейса по ролям).
const (
	AreaOperator           = "operator"
	AreaWarehouse          = "warehouse"
	AreaAccountant         = "accountant"
	AreaAccountantApproval = "accountantApproval"
	AreaRegional           = "regional"
)

var Areas = []string{
	AreaOperator,
	AreaWarehouse,
	AreaAccountant,
	AreaAccountantApproval,
	AreaRegional,
}

// Регион, означающий "все регионы".
const RegionAll = "Україна"
