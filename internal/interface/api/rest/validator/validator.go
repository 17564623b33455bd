package validator

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"sales-manager-api/internal/interface/api/rest/dto/auth"
	"sales-manager-api/internal/interface/api/rest/dto/sale"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,32}$`)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	username := strings.TrimSpace(r.Username)
	password := r.Password

	if username == "" {
		errs["username"] = "username is required"
	} else if !usernameRe.MatchString(username) {
		errs["username"] = "username must be 3-32 characters of letters, digits, '.', '_' or '-'"
	}

	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateLogin only checks presence. Format checks would leak which
// usernames can exist; the service answers everything else with the same
// generic invalid-credentials error.
func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = "username is required"
	}
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateSale(r sale.CreateRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.ClientID) == "" {
		errs["clientId"] = "clientId is required"
	}
	if strings.TrimSpace(r.ClientName) == "" {
		errs["clientName"] = "clientName is required"
	}
	if d := strings.TrimSpace(r.ClientExpeditionDate); d == "" {
		errs["clientExpeditionDate"] = "clientExpeditionDate is required"
	} else if _, err := time.Parse("2006-01-02", d); err != nil {
		errs["clientExpeditionDate"] = "must be YYYY-MM-DD"
	}
	if strings.TrimSpace(r.ClientExpeditionPlace) == "" {
		errs["clientExpeditionPlace"] = "clientExpeditionPlace is required"
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs["phone"] = "phone is required"
	}
	if strings.TrimSpace(r.Address) == "" {
		errs["address"] = "address is required"
	}

	if r.Product == nil {
		errs["product"] = "product price is required and must be a number"
	} else {
		if strings.TrimSpace(r.Product.IMEIOrSerial) == "" {
			errs["product.imeiOrSerial"] = "product imeiOrSerial is required"
		}
		if r.Product.Price <= 0 {
			errs["product.price"] = "product price is required and must be a positive number"
		}
	}

	if r.PaymentPlan < 0 {
		errs["paymentPlan"] = "paymentPlan must be an integer >= 1"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateSalePatch checks only supplied values; absent (zero) fields are the
// caller's way of leaving things unchanged.
func ValidateSalePatch(r sale.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if d := strings.TrimSpace(r.ClientExpeditionDate); d != "" {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			errs["clientExpeditionDate"] = "must be YYYY-MM-DD"
		}
	}

	if r.Product != nil {
		if strings.TrimSpace(r.Product.IMEIOrSerial) == "" {
			errs["product.imeiOrSerial"] = "product imeiOrSerial is required"
		}
		if r.Product.Price <= 0 {
			errs["product.price"] = "product price is required and must be a positive number"
		}
	}

	if r.PaymentPlan < 0 {
		errs["paymentPlan"] = "paymentPlan must be an integer >= 1"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
