package tasklist

import (
	"strconv"
	"time"

	"github.com/aarondl/null/v8"

	"service-tasks/internal/entities"
)

type kind int

const (
	kindText kind = iota
	kindNumber
	kindDate
	kindBool
)

// value - значение поля заявки, приведённое к виду, удобному для сравнения.
type value struct {
	kind    kind
	present bool
	text    string
	num     float64
	date    time.Time
}

type accessor func(t *entities.Task) value

func textOf(get func(t *entities.Task) string) accessor {
	return func(t *entities.Task) value {
		s := get(t)
		return value{kind: kindText, present: s != "", text: s}
	}
}

func nullTextOf(get func(t *entities.Task) null.String) accessor {
	return func(t *entities.Task) value {
		s := get(t)
		return value{kind: kindText, present: s.Valid, text: s.String}
	}
}

func approvalOf(get func(t *entities.Task) entities.Approval) accessor {
	return func(t *entities.Task) value {
		a := get(t)
		return value{kind: kindText, present: !a.IsNull(), text: a.String()}
	}
}

func floatOf(get func(t *entities.Task) null.Float64) accessor {
	return func(t *entities.Task) value {
		f := get(t)
		if !f.Valid {
			return value{kind: kindNumber}
		}
		return value{kind: kindNumber, present: true, num: f.Float64, text: strconv.FormatFloat(f.Float64, 'f', -1, 64)}
	}
}

func intOf(get func(t *entities.Task) null.Int) accessor {
	return func(t *entities.Task) value {
		i := get(t)
		if !i.Valid {
			return value{kind: kindNumber}
		}
		return value{kind: kindNumber, present: true, num: float64(i.Int), text: strconv.Itoa(i.Int)}
	}
}

func dateOf(get func(t *entities.Task) null.Time) accessor {
	return func(t *entities.Task) value {
		d := get(t)
		if !d.Valid {
			return value{kind: kindDate}
		}
		return value{kind: kindDate, present: true, date: d.Time, text: d.Time.Format(dateLayout)}
	}
}

// fields - поля заявки по именам из JSON.
var fields = map[string]accessor{
	"id": func(t *entities.Task) value {
		return value{kind: kindNumber, present: true, num: float64(t.ID), text: strconv.FormatInt(t.ID, 10)}
	},
	"status": textOf(func(t *entities.Task) string { return t.Status }),
	"urgentRequest": func(t *entities.Task) value {
		return value{kind: kindBool, present: true, text: strconv.FormatBool(t.UrgentRequest)}
	},

	"client":          textOf(func(t *entities.Task) string { return t.Client }),
	"address":         textOf(func(t *entities.Task) string { return t.Address }),
	"equipment":       textOf(func(t *entities.Task) string { return t.Equipment }),
	"equipmentSerial": textOf(func(t *entities.Task) string { return t.EquipmentSerial }),
	"engineer1":       textOf(func(t *entities.Task) string { return t.Engineer1 }),
	"engineer2":       textOf(func(t *entities.Task) string { return t.Engineer2 }),
	"region":          textOf(func(t *entities.Task) string { return t.Region }),
	"paymentType":     textOf(func(t *entities.Task) string { return t.PaymentType }),
	"requestDesc":     textOf(func(t *entities.Task) string { return t.RequestDesc }),
	"work":            textOf(func(t *entities.Task) string { return t.Work }),
	"invoice":         textOf(func(t *entities.Task) string { return t.Invoice }),
	"comments":        textOf(func(t *entities.Task) string { return t.Comments }),
	"oilType":         textOf(func(t *entities.Task) string { return t.OilType }),
	"filterName":      textOf(func(t *entities.Task) string { return t.FilterName }),
	"airFilterName":   textOf(func(t *entities.Task) string { return t.AirFilterName }),
	"antifreezeType":  textOf(func(t *entities.Task) string { return t.AntifreezeType }),
	"otherMaterials":  textOf(func(t *entities.Task) string { return t.OtherMaterials }),

	"requestDate": dateOf(func(t *entities.Task) null.Time { return t.RequestDate }),
	"date":        dateOf(func(t *entities.Task) null.Time { return t.Date }),
	"paymentDate": dateOf(func(t *entities.Task) null.Time { return t.PaymentDate }),

	"oilUsed":        floatOf(func(t *entities.Task) null.Float64 { return t.OilUsed }),
	"oilPrice":       floatOf(func(t *entities.Task) null.Float64 { return t.OilPrice }),
	"oilTotal":       floatOf(func(t *entities.Task) null.Float64 { return t.OilTotal }),
	"filterCount":    intOf(func(t *entities.Task) null.Int { return t.FilterCount }),
	"filterPrice":    floatOf(func(t *entities.Task) null.Float64 { return t.FilterPrice }),
	"filterSum":      floatOf(func(t *entities.Task) null.Float64 { return t.FilterSum }),
	"airFilterCount": intOf(func(t *entities.Task) null.Int { return t.AirFilterCount }),
	"airFilterPrice": floatOf(func(t *entities.Task) null.Float64 { return t.AirFilterPrice }),
	"airFilterSum":   floatOf(func(t *entities.Task) null.Float64 { return t.AirFilterSum }),
	"antifreezeL":    floatOf(func(t *entities.Task) null.Float64 { return t.AntifreezeL }),
	"antifreezeSum":  floatOf(func(t *entities.Task) null.Float64 { return t.AntifreezeSum }),
	"transportSum":   floatOf(func(t *entities.Task) null.Float64 { return t.TransportSum }),
	"otherSum":       floatOf(func(t *entities.Task) null.Float64 { return t.OtherSum }),
	"workPrice":      floatOf(func(t *entities.Task) null.Float64 { return t.WorkPrice }),
	"serviceBonus":   floatOf(func(t *entities.Task) null.Float64 { return t.ServiceBonus }),
	"serviceTotal":   floatOf(func(t *entities.Task) null.Float64 { return t.ServiceTotal }),

	"approvedByWarehouse":          approvalOf(func(t *entities.Task) entities.Approval { return t.ApprovedByWarehouse }),
	"approvedByAccountant":         approvalOf(func(t *entities.Task) entities.Approval { return t.ApprovedByAccountant }),
	"approvedByRegionalManager":    approvalOf(func(t *entities.Task) entities.Approval { return t.ApprovedByRegionalManager }),
	"warehouseComment":             nullTextOf(func(t *entities.Task) null.String { return t.WarehouseComment }),
	"accountantComment":            nullTextOf(func(t *entities.Task) null.String { return t.AccountantComment }),
	"regionalManagerComment":       nullTextOf(func(t *entities.Task) null.String { return t.RegionalManagerComment }),
	"warehouseRejectionUser":       nullTextOf(func(t *entities.Task) null.String { return t.WarehouseRejectionUser }),
	"accountantRejectionUser":      nullTextOf(func(t *entities.Task) null.String { return t.AccountantRejectionUser }),
	"regionalManagerRejectionUser": nullTextOf(func(t *entities.Task) null.String { return t.RegionalManagerRejectionUser }),
	"warehouseRejectionDate":       dateOf(func(t *entities.Task) null.Time { return t.WarehouseRejectionDate }),
	"accountantRejectionDate":      dateOf(func(t *entities.Task) null.Time { return t.AccountantRejectionDate }),
	"regionalManagerRejectionDate": dateOf(func(t *entities.Task) null.Time { return t.RegionalManagerRejectionDate }),
	"bonusApprovalDate":            nullTextOf(func(t *entities.Task) null.String { return t.BonusApprovalDate }),
}

// HasField - поле известно списку (фильтр или сортировка).
func HasField(name string) bool {
	_, ok := fields[name]
	return ok
}

func fieldValue(t *entities.Task, name string) (value, bool) {
	get, ok := fields[name]
	if !ok {
		return value{}, false
	}
	return get(t), true
}

const dateLayout = "2006-01-02"

var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02.01.2006",
}

// ParseDate разбирает дату в любом из принятых форматов.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
