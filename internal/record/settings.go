package record

import "strconv"

// Settings is the open string-to-string mapping of branding and system
// preferences. Only a handful of keys are recognized by the dashboard;
// unknown keys are kept as-is.
type Settings map[string]string

const (
	SettingLowStockThreshold = "low_stock_threshold"
	SettingCompanyName       = "company_name"
	SettingPrimaryColor      = "primary_color"
	SettingAccentColor       = "accent_color"
)

// LowStockThreshold returns the configured threshold, or def when the
// key is absent or not a positive integer.
func (s Settings) LowStockThreshold(def int) int {
	raw, ok := s[SettingLowStockThreshold]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// Merge returns a copy of s with the partial settings applied on top.
// Neither input is mutated.
func (s Settings) Merge(partial Settings) Settings {
	merged := make(Settings, len(s)+len(partial))
	for k, v := range s {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	return merged
}
