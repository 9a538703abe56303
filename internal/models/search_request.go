package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Husein100/TravelDataInternalAPI/internal/validator"
)

type FlightSearchRequest struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	Children      int
	Infants       int
}

// NewFlightSearchRequest builds a request from raw query values. Round trips
// only: returnDate is required here so one-way searches never reach the
// search service. Passenger counts default to 1 adult, 0 children, 0 infants.
func NewFlightSearchRequest(origin, destination, date, returnDate, adults, children, infants string) (*FlightSearchRequest, error) {
	if origin == "" || destination == "" || date == "" {
		return nil, fmt.Errorf("missing required params")
	}
	if returnDate == "" {
		return nil, fmt.Errorf("returnDate is required for round-trip search")
	}

	adultsInt, err := parseCount(adults, 1)
	if err != nil {
		return nil, fmt.Errorf("invalid adults")
	}
	childrenInt, err := parseCount(children, 0)
	if err != nil {
		return nil, fmt.Errorf("invalid children")
	}
	infantsInt, err := parseCount(infants, 0)
	if err != nil {
		return nil, fmt.Errorf("invalid infants")
	}

	return &FlightSearchRequest{
		Origin:        strings.ToUpper(strings.TrimSpace(origin)),
		Destination:   strings.ToUpper(strings.TrimSpace(destination)),
		DepartureDate: date,
		ReturnDate:    returnDate,
		Adults:        adultsInt,
		Children:      childrenInt,
		Infants:       infantsInt,
	}, nil
}

func (r *FlightSearchRequest) Validate() error {
	var errs []string

	if _, err := validator.ValidateLocationCode(r.Origin); err != nil {
		errs = append(errs, "invalid origin")
	}
	if _, err := validator.ValidateLocationCode(r.Destination); err != nil {
		errs = append(errs, "invalid destination")
	}
	if _, err := validator.ValidateDate(r.DepartureDate); err != nil {
		errs = append(errs, "invalid date")
	}
	if _, err := validator.ValidateDate(r.ReturnDate); err != nil {
		errs = append(errs, "invalid returnDate")
	}
	if r.Adults <= 0 || r.Adults > 9 {
		errs = append(errs, "invalid or excessive adults")
	}
	if r.Children < 0 || r.Infants < 0 {
		errs = append(errs, "negative passenger count")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, ", "))
	}
	return nil
}

type HotelSearchRequest struct {
	City         string
	CheckInDate  string
	CheckOutDate string
}

func NewHotelSearchRequest(city, checkInDate, checkOutDate string) (*HotelSearchRequest, error) {
	if checkInDate == "" || checkOutDate == "" {
		return nil, fmt.Errorf("both checkInDate and checkOutDate are required")
	}
	return &HotelSearchRequest{
		City:         strings.TrimSpace(city),
		CheckInDate:  checkInDate,
		CheckOutDate: checkOutDate,
	}, nil
}

func (r *HotelSearchRequest) Validate() error {
	var errs []string

	city, err := validator.ValidateCity(r.City)
	if err != nil {
		errs = append(errs, err.Error())
	} else {
		r.City = city // normalized
	}

	if _, err := validator.ValidateDate(r.CheckInDate); err != nil {
		errs = append(errs, "invalid checkInDate")
	}
	if _, err := validator.ValidateDate(r.CheckOutDate); err != nil {
		errs = append(errs, "invalid checkOutDate")
	}

	// checkOut before checkIn is deliberately not rejected; the mapper
	// reports the raw day difference, which may be zero or negative.

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, ", "))
	}
	return nil
}

func parseCount(s string, def int) (int, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return n, nil
}
