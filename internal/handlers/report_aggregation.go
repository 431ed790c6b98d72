package handlers

import (
	"sort"

	"github.com/anosenkoalex/NewHorizonBuild/models"
)

// ReportLine — пара (количество, выручка) для одной строки разбивки.
type ReportLine struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// ManagerSummary — итоги по одному менеджеру.
type ManagerSummary struct {
	ManagerID uint    `json:"managerId"`
	FullName  string  `json:"fullName"`
	Count     int     `json:"count"`
	Revenue   float64 `json:"revenue"`
}

// SalesReport — отчёт по продажам: итоги и три независимые разбивки.
type SalesReport struct {
	TotalDeals   int                   `json:"totalDeals"`
	TotalRevenue float64               `json:"totalRevenue"`
	ByUnitType   map[string]ReportLine `json:"byUnitType"`
	ByDealType   map[string]ReportLine `json:"byDealType"`
	ByManager    map[uint]ReportLine   `json:"byManager"`
	Managers     []ManagerSummary      `json:"managers"`
}

const managerNamePlaceholder = "Без имени"

// AggregateSales считает отчёт одним проходом по уже отфильтрованным сделкам.
// Выручка сделки — цена её юнита; отсутствующая цена считается нулём.
// Имя менеджера берётся из первой встреченной записи.
func AggregateSales(deals []models.Deal) SalesReport {
	report := SalesReport{
		ByUnitType: map[string]ReportLine{},
		ByDealType: map[string]ReportLine{},
		ByManager:  map[uint]ReportLine{},
	}
	managerNames := map[uint]string{}

	for _, deal := range deals {
		var revenue float64
		unitType := ""
		if deal.Unit != nil {
			revenue = deal.Unit.Price
			unitType = deal.Unit.Type
		}

		report.TotalDeals++
		report.TotalRevenue += revenue

		line := report.ByUnitType[unitType]
		line.Count++
		line.Revenue += revenue
		report.ByUnitType[unitType] = line

		line = report.ByDealType[deal.Type]
		line.Count++
		line.Revenue += revenue
		report.ByDealType[deal.Type] = line

		line = report.ByManager[deal.ManagerID]
		line.Count++
		line.Revenue += revenue
		report.ByManager[deal.ManagerID] = line

		if _, ok := managerNames[deal.ManagerID]; !ok {
			name := ""
			if deal.Manager != nil {
				name = deal.Manager.FullName
			}
			if name == "" {
				name = managerNamePlaceholder
			}
			managerNames[deal.ManagerID] = name
		}
	}

	for managerID, line := range report.ByManager {
		report.Managers = append(report.Managers, ManagerSummary{
			ManagerID: managerID,
			FullName:  managerNames[managerID],
			Count:     line.Count,
			Revenue:   line.Revenue,
		})
	}
	// Порядок списка фиксируем по id, чтобы ответ был воспроизводимым
	sort.Slice(report.Managers, func(i, j int) bool {
		return report.Managers[i].ManagerID < report.Managers[j].ManagerID
	})

	return report
}

// DashboardSummary — сводка для главной страницы админки.
type DashboardSummary struct {
	TotalUnits    int64            `json:"totalUnits"`
	UnitsByStatus map[string]int64 `json:"unitsByStatus"`
	TotalDeals    int64            `json:"totalDeals"`
	TotalRevenue  float64          `json:"totalRevenue"`
}

// CountUnitsByStatus раскладывает юниты по статусам.
// Все пять статусов присутствуют в результате всегда, даже с нулём.
func CountUnitsByStatus(units []models.Unit) map[string]int64 {
	counts := make(map[string]int64, len(models.AllUnitStatuses))
	for _, status := range models.AllUnitStatuses {
		counts[status] = 0
	}
	for _, unit := range units {
		counts[unit.Status]++
	}
	return counts
}
