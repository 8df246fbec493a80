package handlers

import (
	"strconv"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// parseYearMonth reads the month-view query parameters.
func parseYearMonth(yearStr, monthStr string) (int, int, error) {
	if yearStr == "" || monthStr == "" {
		return 0, 0, httperr.ErrBusiness("missing_year_or_month")
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, httperr.ErrBusiness("invalid_year")
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return 0, 0, httperr.ErrBusiness("invalid_month")
	}

	return year, month, nil
}
