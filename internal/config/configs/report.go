package configs

import (
	"fmt"
	"strings"
)

// Report holds the defaults every dashboard tab is built with.
type Report struct {
	// SpendThreshold selects the countries listed in the top countries
	// table (spend strictly greater than the threshold, USD).
	SpendThreshold float64 `env:"SPEND_THRESHOLD" envDefault:"100"`
	// FocusCountries get their own rows and rankings; the remaining
	// countries are reported together as the rest of the world.
	FocusCountries []string `env:"FOCUS_COUNTRIES" envDefault:"TR,AZ" envSeparator:","`
	// TopN is the length of each ranking.
	TopN int `env:"TOP_N" envDefault:"10"`
}

// Validate normalises the focus countries and checks the limits.
func (c *Report) Validate() error {
	if c.TopN <= 0 {
		return fmt.Errorf("REPORT_TOP_N must be positive, got %d", c.TopN)
	}
	if c.SpendThreshold < 0 {
		return fmt.Errorf("REPORT_SPEND_THRESHOLD must not be negative, got %v", c.SpendThreshold)
	}
	countries := c.FocusCountries[:0]
	for _, code := range c.FocusCountries {
		if code = strings.TrimSpace(code); code != "" {
			countries = append(countries, code)
		}
	}
	c.FocusCountries = countries
	return nil
}
