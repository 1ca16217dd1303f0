package documents

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"

	"service-tasks/internal/entities"
)

type detail struct {
	Label string
	Value string
}

type material struct {
	Name     string
	Quantity string
	Price    string
	Sum      string
}

type naryadView struct {
	Number       string
	RequestDate  string
	Urgent       bool
	Details      []detail
	Materials    []material
	ServiceTotal string
	Engineer     string
}

// NaryadFileName - имя файла наряда для Content-Disposition.
func NaryadFileName(t *entities.Task) string {
	return fmt.Sprintf("naryad_%d.doc", t.ID)
}

// RenderNaryad - наряд-заказ в HTML, который открывается в Word.
func RenderNaryad(w io.Writer, t *entities.Task) error {
	engineers := strings.TrimSpace(strings.Join(nonEmpty(t.Engineer1, t.Engineer2), ", "))

	view := naryadView{
		Number:      strconv.FormatInt(t.ID, 10),
		RequestDate: formatDate(t.RequestDate),
		Urgent:      t.UrgentRequest,
		Details: []detail{
			{"Замовник", t.Client},
			{"Адреса", t.Address},
			{"Регіон", t.Region},
			{"Обладнання", t.Equipment},
			{"Заводський номер", t.EquipmentSerial},
			{"Опис заявки", t.RequestDesc},
			{"Виконані роботи", t.Work},
			{"Дата виконання", formatDate(t.Date)},
			{"Інженери", engineers},
			{"Вид оплати", t.PaymentType},
			{"Рахунок", t.Invoice},
			{"Статус", t.Status},
		},
		ServiceTotal: formatMoney(t.ServiceTotal),
		Engineer:     t.Engineer1,
	}

	view.Materials = append(view.Materials,
		materialRow(t.OilType, formatNumber(t.OilUsed), t.OilPrice, t.OilTotal),
		materialRow(t.FilterName, formatInt(t.FilterCount), t.FilterPrice, t.FilterSum),
		materialRow(t.AirFilterName, formatInt(t.AirFilterCount), t.AirFilterPrice, t.AirFilterSum),
		materialRow(t.AntifreezeType, formatNumber(t.AntifreezeL), null.Float64{}, t.AntifreezeSum),
		materialRow("Транспортні витрати", "", null.Float64{}, t.TransportSum),
		materialRow(t.OtherMaterials, "", null.Float64{}, t.OtherSum),
	)
	view.Materials = compactMaterials(view.Materials)

	return templates.ExecuteTemplate(w, "naryad.html", view)
}

func materialRow(name, quantity string, price, sum null.Float64) material {
	return material{Name: name, Quantity: quantity, Price: formatMoney(price), Sum: formatMoney(sum)}
}

// compactMaterials убирает строки, где нет ни количества, ни суммы.
func compactMaterials(rows []material) []material {
	out := rows[:0]
	for _, m := range rows {
		if m.Quantity == "" && m.Sum == "" {
			continue
		}
		out = append(out, m)
	}
	return out
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
