package domain

// Derived views returned by the engine. These are projections of a Snapshot,
// never stored.

// DaySummary aggregates one calendar day of transactions.
type DaySummary struct {
	Date         Date              `json:"date"`
	GrossRevenue float64           `json:"gross_revenue"`
	NetRevenue   float64           `json:"net_revenue"`
	Expenses     float64           `json:"expenses"`
	Transactions []CashTransaction `json:"transactions"`
}

// GoalProgress is a goal with its completion percentage (capped at 100).
type GoalProgress struct {
	Goal      Goal    `json:"goal"`
	Percent   float64 `json:"percent"`
	Remaining float64 `json:"remaining"`
}

// Dashboard is the monthly snapshot view backing the main dashboard screen.
type Dashboard struct {
	ReferenceDate   Date    `json:"reference_date"`
	GrossRevenue    float64 `json:"gross_revenue"`
	NetRevenue      float64 `json:"net_revenue"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	FixedCosts      float64 `json:"fixed_costs"`
	VariableCosts   float64 `json:"variable_costs"`
	CostOfGoods     float64 `json:"cost_of_goods"`
	Profit          float64 `json:"profit"`
	MarginPercent   float64 `json:"margin_percent"`

	UpcomingBills   []Bill                    `json:"upcoming_bills"`    // unpaid, due within 7 days
	LowStock        []Ingredient              `json:"low_stock"`         // at or below minimum
	ActiveGoals     []GoalProgress            `json:"active_goals"`
	RevenueByMethod map[PaymentMethod]float64 `json:"revenue_by_method"` // gross, revenue only
}

// MonthlyResult is the formal P&L for one calendar month, including the
// break-even point.
type MonthlyResult struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	GrossRevenue  float64 `json:"gross_revenue"`
	NetRevenue    float64 `json:"net_revenue"`
	FixedCosts    float64 `json:"fixed_costs"`
	VariableCosts float64 `json:"variable_costs"`
	CostOfGoods   float64 `json:"cost_of_goods"`
	Profit        float64 `json:"profit"`
	MarginPercent float64 `json:"margin_percent"`

	ContributionMargin float64 `json:"contribution_margin"`
	ContributionIndex  float64 `json:"contribution_index"`
	BreakEven          float64 `json:"break_even"`
}

// PurchaseItem is one line of the restock purchase list.
type PurchaseItem struct {
	IngredientID  string         `json:"ingredient_id"`
	Name          string         `json:"name"`
	Kind          IngredientKind `json:"kind"`
	CurrentStock  float64        `json:"current_stock"`
	MinimumStock  float64        `json:"minimum_stock"`
	QuantityToBuy float64        `json:"quantity_to_buy"` // packages
	EstimatedCost float64        `json:"estimated_cost"`
}

// ServiceHealth is the health of one dependency as reported by /healthz.
type ServiceHealth struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	LatencyMs   int64  `json:"latency_ms"`
	LastChecked string `json:"last_checked"`
}

// HealthStatus is the aggregate /healthz response.
type HealthStatus struct {
	Status   string          `json:"status"`
	Services []ServiceHealth `json:"services"`
}

// OpsSummary is an operational metrics snapshot for GET /v1/ops/summary.
type OpsSummary struct {
	TotalRequests int64   `json:"total_requests"`
	ErrorRate     float64 `json:"error_rate"`
	CacheHitRate  float64 `json:"cache_hit_rate"`
	StoreErrors   int64   `json:"store_errors"`
	Period        string  `json:"period"`
}
