package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ReportSummary holds the derived figures shown on the report's summary
// panels. All values are computed from the profile; nothing here is
// parsed directly.
type ReportSummary struct {
	TotalIncome    float64 `json:"total_income"`
	TotalExpense   float64 `json:"total_expense"`
	MonthlySurplus float64 `json:"monthly_surplus"`
	SavingsRate    float64 `json:"savings_rate"`

	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
	NetWorth         float64 `json:"net_worth"`

	AnnualPremium  float64 `json:"annual_premium"`
	MonthlyPremium float64 `json:"monthly_premium"`
	TotalCoverage  float64 `json:"total_coverage"`
}

// ReportResponse is returned by the parse and fetch endpoints.
type ReportResponse struct {
	SessionID string         `json:"session_id"`
	Profile   *ClientProfile `json:"profile"`
	Summary   ReportSummary  `json:"summary"`
	ParsedAt  string         `json:"parsed_at"`
}
