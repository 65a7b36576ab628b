package subscription

import (
	"regexp"
	"strings"
)

// ===============================
// Field validation
// ===============================

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated field in one error.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// ===============================
// Enums
// ===============================

var validMealTypes = map[string]bool{
	"Breakfast": true,
	"Lunch":     true,
	"Dinner":    true,
}

var validDeliveryDays = map[string]bool{
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
	"Sunday":    true,
}

var phonePattern = regexp.MustCompile(`^(\+62|62|0)8[1-9][0-9]{6,9}$`)

const maxAllergiesLen = 500

// ===============================
// Create request
// ===============================

type CreateRequest struct {
	Name         string
	PhoneNumber  string
	PlanID       uint
	MealTypes    []string
	DeliveryDays []string
	Allergies    string
}

// Validate checks the request shape and reports every violation at once.
// Price and plan existence are checked by the use case.
func (r *CreateRequest) Validate() error {
	verr := &ValidationError{}

	name := strings.TrimSpace(r.Name)
	if len(name) < 2 || len(name) > 100 {
		verr.add("name", "must be between 2 and 100 characters")
	}

	if !phonePattern.MatchString(r.PhoneNumber) {
		verr.add("phoneNumber", "must be a valid Indonesian phone number")
	}

	if r.PlanID == 0 {
		verr.add("planId", "a valid plan id is required")
	}

	if n := len(r.MealTypes); n < 1 || n > 3 {
		verr.add("mealTypes", "select 1-3 meal types")
	}
	seen := map[string]bool{}
	for _, mt := range r.MealTypes {
		if !validMealTypes[mt] {
			verr.add("mealTypes", "invalid meal type: "+mt)
		} else if seen[mt] {
			verr.add("mealTypes", "duplicate meal type: "+mt)
		}
		seen[mt] = true
	}

	if n := len(r.DeliveryDays); n < 1 || n > 7 {
		verr.add("deliveryDays", "select 1-7 delivery days")
	}
	seen = map[string]bool{}
	for _, d := range r.DeliveryDays {
		if !validDeliveryDays[d] {
			verr.add("deliveryDays", "invalid delivery day: "+d)
		} else if seen[d] {
			verr.add("deliveryDays", "duplicate delivery day: "+d)
		}
		seen[d] = true
	}

	if len(r.Allergies) > maxAllergiesLen {
		verr.add("allergies", "must be less than 500 characters")
	}

	return verr.orNil()
}

// Sanitize trims free text and strips HTML metacharacters.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	return s
}
