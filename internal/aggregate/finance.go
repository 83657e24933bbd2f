package aggregate

import (
	"github.com/autohandel/backoffice/internal/models"
)

// recentCostLimit bounds the recent-costs list of the finance view.
const recentCostLimit = 5

// VehicleMargin is the derived profit line of one vehicle.
type VehicleMargin struct {
	ID            int64                `json:"id"`
	Name          string               `json:"naam"`
	StockNumber   string               `json:"stocknummer"`
	Status        models.VehicleStatus `json:"status"`
	PurchasePrice float64              `json:"inkoopprijs"`
	SalePrice     float64              `json:"verkoopprijs"`
	Profit        float64              `json:"winst"`
	MarginPct     float64              `json:"marge"`
}

// FinanceSummary is the read-side projection behind the finance view.
type FinanceSummary struct {
	Period              string                      `json:"periode"`
	TotalRevenue        float64                     `json:"totaleOmzet"`
	TotalPurchase       float64                     `json:"totaleInkoop"`
	TotalProfit         float64                     `json:"totaleWinst"`
	TotalCosts          float64                     `json:"totaleKosten"`
	OutstandingTotal    float64                     `json:"openstaandeBedragen"`
	CostCategories      map[string]float64          `json:"kostenCategorieen"`
	Margins             []VehicleMargin             `json:"wagenWinsten"`
	RecentCosts         []models.Cost               `json:"recenteKosten"`
	OutstandingPayments []models.OutstandingPayment `json:"openstaandeBetalingen"`
	AverageDaysOverdue  int                         `json:"gemiddeldeDagenOverTijd"`
	Summonses           []models.Summons            `json:"dagvaardingen"`
}

// Margin returns profit (sale - purchase) and the margin percentage over the
// purchase price. Missing prices count as 0; a zero purchase price yields 0%.
func Margin(v models.Vehicle) (profit, pct float64) {
	profit = v.SalePrice - v.PurchasePrice
	if v.PurchasePrice != 0 {
		pct = profit / v.PurchasePrice * 100
	}
	return profit, pct
}

// Finance computes the finance summary. Only sold vehicles count towards
// revenue and purchase totals; costs are summed over every entry. period is
// echoed back but does not filter anything.
func Finance(vehicles []models.Vehicle, costs []models.Cost, period string) FinanceSummary {
	s := FinanceSummary{
		Period:         period,
		CostCategories: map[string]float64{},
		Margins:        make([]VehicleMargin, 0, len(vehicles)),
	}

	for _, v := range vehicles {
		if v.Status == models.VehicleSold {
			s.TotalRevenue += v.SalePrice
			s.TotalPurchase += v.PurchasePrice
		}
		profit, pct := Margin(v)
		s.Margins = append(s.Margins, VehicleMargin{
			ID:            v.ID,
			Name:          v.DisplayName(),
			StockNumber:   v.StockNumber,
			Status:        v.Status,
			PurchasePrice: v.PurchasePrice,
			SalePrice:     v.SalePrice,
			Profit:        profit,
			MarginPct:     pct,
		})
	}
	s.TotalProfit = s.TotalRevenue - s.TotalPurchase

	s.CostCategories["inkoop"] = s.TotalPurchase
	for _, c := range costs {
		s.TotalCosts += c.Amount
		s.CostCategories[c.Category] += c.Amount
	}

	s.RecentCosts = make([]models.Cost, 0, recentCostLimit)
	for i := len(costs) - 1; i >= 0 && len(s.RecentCosts) < recentCostLimit; i-- {
		s.RecentCosts = append(s.RecentCosts, costs[i])
	}

	s.OutstandingPayments = SeedOutstandingPayments()
	s.OutstandingTotal = OutstandingTotal(s.OutstandingPayments)
	s.AverageDaysOverdue = AverageDaysOverdue(s.OutstandingPayments)
	s.Summonses = SeedSummonses()
	return s
}
