package validator

import (
	"errors"
	"strings"
	"time"
)

// ValidateCity lowercases and trims a city name. A single character is not a
// city.
func ValidateCity(s string) (string, error) {
	c := strings.TrimSpace(strings.ToLower(s))
	if len(c) < 2 {
		return "", errors.New("invalid city")
	}
	return c, nil
}

// ValidateLocationCode checks a three-letter IATA airport/city code.
func ValidateLocationCode(s string) (string, error) {
	c := strings.TrimSpace(strings.ToUpper(s))
	if len(c) != 3 {
		return "", errors.New("invalid location code")
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return "", errors.New("invalid location code")
		}
	}
	return c, nil
}

func ValidateDate(dateStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, errors.New("invalid date")
	}
	return t, nil
}
