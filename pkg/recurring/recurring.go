// Package recurring renders recurring description templates against a reference date.
//
// A template is plain text with month placeholders. The placeholders always
// resolve relative to the month of the reference date, so the same template
// yields different text in different months.
package recurring

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Placeholders understood by Render.
const (
	ThisMonthNumber     = "{this_month_number}"
	ThisMonthName       = "{this_month_name}"
	LastMonthNumber     = "{last_month_number}"
	LastMonthName       = "{last_month_name}"
	LastBimonthlyNumber = "{last_bimonthly_number}"
	LastBimonthlyName   = "{last_bimonthly_name}"
)

// bimonthlySeparator joins the two months of a bimonthly period.
const bimonthlySeparator = "-"

// MonthNames maps month numbers 1-12 to display names. Index 0 is unused.
type MonthNames [13]string

// DefaultMonthNames are the English month names.
var DefaultMonthNames = MonthNames{
	"",
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// NewMonthNames builds MonthNames from a list of exactly twelve names.
func NewMonthNames(names []string) (MonthNames, error) {
	var result MonthNames
	if len(names) != 12 {
		return result, fmt.Errorf("expected 12 month names, got %d", len(names))
	}
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return result, fmt.Errorf("month name %d is empty", i+1)
		}
		result[i+1] = name
	}
	return result, nil
}

// Name returns the name of month m, falling back to the English name.
func (n MonthNames) Name(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	if n[m] != "" {
		return n[m]
	}
	return DefaultMonthNames[m]
}

// LastMonth returns the month before m.
func LastMonth(m int) int {
	return (m+10)%12 + 1
}

// LastBimonthly returns the first and last month of the last complete
// two-month period (Jan-Feb, Mar-Apr, ...) before the one containing m.
func LastBimonthly(m int) (from, to int) {
	from = (m+m%2+8)%12 + 1
	to = (m+m%2+9)%12 + 1
	return from, to
}

// Render resolves every placeholder in template for the month of date.
func Render(template string, date time.Time, names MonthNames) string {
	thisMonth := int(date.Month())
	lastMonth := LastMonth(thisMonth)
	bimonthlyFrom, bimonthlyTo := LastBimonthly(thisMonth)

	replacer := strings.NewReplacer(
		ThisMonthNumber, strconv.Itoa(thisMonth),
		ThisMonthName, names.Name(thisMonth),
		LastMonthNumber, strconv.Itoa(lastMonth),
		LastMonthName, names.Name(lastMonth),
		LastBimonthlyNumber, strconv.Itoa(bimonthlyFrom)+bimonthlySeparator+strconv.Itoa(bimonthlyTo),
		LastBimonthlyName, names.Name(bimonthlyFrom)+bimonthlySeparator+names.Name(bimonthlyTo),
	)
	return replacer.Replace(template)
}
