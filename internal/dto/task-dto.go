package dto

import "service-tasks/internal/entities"

// TaskPayload - редактируемые поля заявки.
// Даты приходят строками: 2006-01-02, 02.01.2006 или RFC3339.
type TaskPayload struct {
	Status        string `json:"status" validate:"omitempty,task_status"`
	UrgentRequest bool   `json:"urgentRequest"`

	Client          string `json:"client" validate:"max=500"`
	Address         string `json:"address" validate:"max=1000"`
	Equipment       string `json:"equipment" validate:"max=500"`
	EquipmentSerial string `json:"equipmentSerial" validate:"max=255"`
	Engineer1       string `json:"engineer1" validate:"max=255"`
	Engineer2       string `json:"engineer2" validate:"max=255"`
	Region          string `json:"region" validate:"max=255"`
	PaymentType     string `json:"paymentType" validate:"max=100"`
	RequestDesc     string `json:"requestDesc"`
	Work            string `json:"work"`
	Invoice         string `json:"invoice" validate:"max=255"`
	Comments        string `json:"comments"`

	RequestDate string `json:"requestDate" validate:"omitempty,task_date"`
	Date        string `json:"date" validate:"omitempty,task_date"`
	PaymentDate string `json:"paymentDate" validate:"omitempty,task_date"`

	OilType        string   `json:"oilType"`
	OilUsed        *float64 `json:"oilUsed" validate:"omitempty,gte=0"`
	OilPrice       *float64 `json:"oilPrice" validate:"omitempty,gte=0"`
	OilTotal       *float64 `json:"oilTotal" validate:"omitempty,gte=0"`
	FilterName     string   `json:"filterName"`
	FilterCount    *int     `json:"filterCount" validate:"omitempty,gte=0"`
	FilterPrice    *float64 `json:"filterPrice" validate:"omitempty,gte=0"`
	FilterSum      *float64 `json:"filterSum" validate:"omitempty,gte=0"`
	AirFilterName  string   `json:"airFilterName"`
	AirFilterCount *int     `json:"airFilterCount" validate:"omitempty,gte=0"`
	AirFilterPrice *float64 `json:"airFilterPrice" validate:"omitempty,gte=0"`
	AirFilterSum   *float64 `json:"airFilterSum" validate:"omitempty,gte=0"`
	AntifreezeType string   `json:"antifreezeType"`
	AntifreezeL    *float64 `json:"antifreezeL" validate:"omitempty,gte=0"`
	AntifreezeSum  *float64 `json:"antifreezeSum" validate:"omitempty,gte=0"`
	TransportSum   *float64 `json:"transportSum" validate:"omitempty,gte=0"`
	OtherMaterials string   `json:"otherMaterials"`
	OtherSum       *float64 `json:"otherSum" validate:"omitempty,gte=0"`
	WorkPrice      *float64 `json:"workPrice" validate:"omitempty,gte=0"`
	ServiceBonus   *float64 `json:"serviceBonus"`
	ServiceTotal   *float64 `json:"serviceTotal"`

	// Поля ниже меняет только администратор.
	ApprovedByWarehouse       entities.Approval `json:"approvedByWarehouse" validate:"omitempty,approval_value"`
	ApprovedByAccountant      entities.Approval `json:"approvedByAccountant" validate:"omitempty,approval_value"`
	ApprovedByRegionalManager entities.Approval `json:"approvedByRegionalManager" validate:"omitempty,approval_value"`
	BonusApprovalDate         string            `json:"bonusApprovalDate" validate:"omitempty,month_year"`
}

type CreateTaskDTO struct {
	TaskPayload
}

type UpdateTaskDTO struct {
	TaskPayload
	Version int64 `json:"version" validate:"required,gt=0"`
}

// TaskRowDTO - строка таблицы рабочей области.
type TaskRowDTO struct {
	*entities.Task
	Bucket  string   `json:"bucket"`
	Actions []string `json:"actions"`
	// Форма редактирования или только "Информация".
	Editable bool `json:"editable"`
}
