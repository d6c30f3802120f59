package payload

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jellydator/validation"
)

const (
	defaultHistoryDays = 30
	maxHistoryDays     = 365
)

type PriceHistoryRequest struct {
	Days string
}

func (pr PriceHistoryRequest) Validate() error {
	daysRegex, err := regexp.Compile(`^[0-9]+$`)
	if err != nil {
		return fmt.Errorf("compile regex: %w", err)
	}

	return validation.ValidateStruct(&pr,
		validation.Field(&pr.Days, validation.Match(daysRegex), validation.By(checkDaysRange)),
	)
}

func checkDaysRange(value interface{}) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("parse days: %w", err)
	}
	if days < 1 || days > maxHistoryDays {
		return fmt.Errorf("days must be between 1 and %d", maxHistoryDays)
	}
	return nil
}

// DaysCount returns the parsed day count, defaulting when the parameter is
// absent.
func (pr PriceHistoryRequest) DaysCount() int {
	if pr.Days == "" {
		return defaultHistoryDays
	}
	days, err := strconv.Atoi(pr.Days)
	if err != nil {
		return defaultHistoryDays
	}
	return days
}
