package model

import "time"

// AssetDefinition is the static, externally supplied description of one
// launchpad token. It is loaded from configuration and never mutated at
// runtime; everything derived from it lives in a Record.
type AssetDefinition struct {
	Symbol      string `yaml:"symbol"`
	Name        string `yaml:"name"`
	Mint        string `yaml:"mint"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`

	// ICOPrice is the sale (basis) price in USD. ROI against it is only
	// defined when it is positive.
	ICOPrice    float64  `yaml:"ico_price"`
	LaunchPrice *float64 `yaml:"launch_price,omitempty"`

	SaleTokens  float64 `yaml:"sale_tokens"`
	TotalSupply float64 `yaml:"total_supply"`

	Committed float64 `yaml:"committed"`
	Raised    float64 `yaml:"raised"`
	MinRaise  float64 `yaml:"min_raise"`

	MonthlyAllowance *float64 `yaml:"monthly_allowance,omitempty"`
	Contributors     int      `yaml:"contributors"`

	// Oversubscription, when present, overrides the derived
	// committed/min_raise ratio (some sales publish the official figure).
	Oversubscription *float64 `yaml:"oversubscription,omitempty"`

	Permissionless bool `yaml:"permissionless"`

	// ICODate is the token generation event date (YYYY-MM-DD), used as the
	// reference point for time-anchored returns. Optional.
	ICODate string `yaml:"ico_date,omitempty"`
}

// TGE returns the token generation event time parsed from ICODate.
// The second return value is false when no date was configured or the
// date does not parse.
func (a *AssetDefinition) TGE() (time.Time, bool) {
	if a.ICODate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", a.ICODate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
