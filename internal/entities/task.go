package entities

import (
	"github.com/aarondl/null/v8"

	"service-tasks/pkg/types"
)

// Task - заявка на сервисное обслуживание.
type Task struct {
	ID     int64  `json:"id" db:"id"`
	Status string `json:"status" db:"status"`

	UrgentRequest bool `json:"urgentRequest" db:"urgent_request"`

	Client          string `json:"client" db:"client"`
	Address         string `json:"address" db:"address"`
	Equipment       string `json:"equipment" db:"equipment"`
	EquipmentSerial string `json:"equipmentSerial" db:"equipment_serial"`
	Engineer1       string `json:"engineer1" db:"engineer1"`
	Engineer2       string `json:"engineer2" db:"engineer2"`
	Region          string `json:"region" db:"region"`
	PaymentType     string `json:"paymentType" db:"payment_type"`
	RequestDesc     string `json:"requestDesc" db:"request_desc"`
	Work            string `json:"work" db:"work"`
	Invoice         string `json:"invoice" db:"invoice"`
	Comments        string `json:"comments" db:"comments"`

	RequestDate null.Time `json:"requestDate" db:"request_date"`
	Date        null.Time `json:"date" db:"work_date"`
	PaymentDate null.Time `json:"paymentDate" db:"payment_date"`

	// Материалы и суммы
	OilType        string       `json:"oilType" db:"oil_type"`
	OilUsed        null.Float64 `json:"oilUsed" db:"oil_used"`
	OilPrice       null.Float64 `json:"oilPrice" db:"oil_price"`
	OilTotal       null.Float64 `json:"oilTotal" db:"oil_total"`
	FilterName     string       `json:"filterName" db:"filter_name"`
	FilterCount    null.Int     `json:"filterCount" db:"filter_count"`
	FilterPrice    null.Float64 `json:"filterPrice" db:"filter_price"`
	FilterSum      null.Float64 `json:"filterSum" db:"filter_sum"`
	AirFilterName  string       `json:"airFilterName" db:"air_filter_name"`
	AirFilterCount null.Int     `json:"airFilterCount" db:"air_filter_count"`
	AirFilterPrice null.Float64 `json:"airFilterPrice" db:"air_filter_price"`
	AirFilterSum   null.Float64 `json:"airFilterSum" db:"air_filter_sum"`
	AntifreezeType string       `json:"antifreezeType" db:"antifreeze_type"`
	AntifreezeL    null.Float64 `json:"antifreezeL" db:"antifreeze_l"`
	AntifreezeSum  null.Float64 `json:"antifreezeSum" db:"antifreeze_sum"`
	TransportSum   null.Float64 `json:"transportSum" db:"transport_sum"`
	OtherMaterials string       `json:"otherMaterials" db:"other_materials"`
	OtherSum       null.Float64 `json:"otherSum" db:"other_sum"`
	WorkPrice      null.Float64 `json:"workPrice" db:"work_price"`
	ServiceBonus   null.Float64 `json:"serviceBonus" db:"service_bonus"`
	ServiceTotal   null.Float64 `json:"serviceTotal" db:"service_total"`

	// Согласования
	ApprovedByWarehouse          Approval    `json:"approvedByWarehouse" db:"approved_by_warehouse"`
	WarehouseComment             null.String `json:"warehouseComment" db:"warehouse_comment"`
	WarehouseRejectionDate       null.Time   `json:"warehouseRejectionDate" db:"warehouse_rejection_date"`
	WarehouseRejectionUser       null.String `json:"warehouseRejectionUser" db:"warehouse_rejection_user"`
	ApprovedByAccountant         Approval    `json:"approvedByAccountant" db:"approved_by_accountant"`
	AccountantComment            null.String `json:"accountantComment" db:"accountant_comment"`
	AccountantRejectionDate      null.Time   `json:"accountantRejectionDate" db:"accountant_rejection_date"`
	AccountantRejectionUser      null.String `json:"accountantRejectionUser" db:"accountant_rejection_user"`
	ApprovedByRegionalManager    Approval    `json:"approvedByRegionalManager" db:"approved_by_regional_manager"`
	RegionalManagerComment       null.String `json:"regionalManagerComment" db:"regional_manager_comment"`
	RegionalManagerRejectionDate null.Time   `json:"regionalManagerRejectionDate" db:"regional_manager_rejection_date"`
	RegionalManagerRejectionUser null.String `json:"regionalManagerRejectionUser" db:"regional_manager_rejection_user"`

	// Месяц утверждения премии, "MM-YYYY".
	BonusApprovalDate null.String `json:"bonusApprovalDate" db:"bonus_approval_date"`

	Version int64 `json:"version" db:"version"`

	types.BaseEntity
}
