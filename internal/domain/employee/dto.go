package employee

import (
	"time"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/validator"
)

type CountryProfileData struct {
	// India
	AadhaarNumber *string `json:"aadhar_number,omitempty"`
	PAN           *string `json:"pan,omitempty"`
	BankAccount   *string `json:"bank_account,omitempty"`
	IFSC          *string `json:"ifsc,omitempty"`

	// France
	SocialSecurityNumber *string `json:"numero_securite_sociale,omitempty"`
	BankIBAN             *string `json:"bank_iban,omitempty"`
	DepartmentCode       *string `json:"department_code,omitempty"`

	// USA
	SSN           *string `json:"ssn,omitempty"`
	RoutingNumber *string `json:"routing_number,omitempty"`
}

type CreateEmployeeRequest struct {
	EmployeeID         int64               `json:"employee_id"`
	FullName           string              `json:"full_name"`
	DateOfBirth        *string             `json:"date_of_birth,omitempty"`
	StartDate          *string             `json:"start_date,omitempty"`
	Country            string              `json:"country"`
	CurrencyCode       string              `json:"currency_code"`
	CountrySpecificData *CountryProfileData `json:"country_specific_data,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a positive number"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}

	c, err := country.Parse(r.Country)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "country", Message: "must be one of: India, France, USA"})
	} else if r.CurrencyCode != "" && r.CurrencyCode != c.CurrencyCode() {
		errs = append(errs, validator.ValidationError{Field: "currency_code", Message: "does not match country currency"})
	}

	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if err == nil && r.CountrySpecificData != nil {
		errs = append(errs, ValidateProfileData(c, r.CountrySpecificData)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateProfileData checks the country-specific fields against the rules
// of the owning country. Absent fields pass; present fields must be valid.
func ValidateProfileData(c country.Country, data *CountryProfileData) validator.ValidationErrors {
	var errs validator.ValidationErrors

	switch c {
	case country.India:
		if data.AadhaarNumber != nil && !validator.IsValidAadhaar(*data.AadhaarNumber) {
			errs = append(errs, validator.ValidationError{Field: "aadhar_number", Message: "must be 12 digits"})
		}
		if data.PAN != nil && !validator.IsValidPAN(*data.PAN) {
			errs = append(errs, validator.ValidationError{Field: "pan", Message: "invalid PAN format"})
		}
		if data.IFSC != nil && !validator.IsValidIFSC(*data.IFSC) {
			errs = append(errs, validator.ValidationError{Field: "ifsc", Message: "invalid IFSC code"})
		}
	case country.France:
		if data.SocialSecurityNumber != nil && !validator.IsValidFrenchSSN(*data.SocialSecurityNumber) {
			errs = append(errs, validator.ValidationError{Field: "numero_securite_sociale", Message: "must be 15 digits"})
		}
		if data.BankIBAN != nil && !validator.IsValidFrenchIBAN(*data.BankIBAN) {
			errs = append(errs, validator.ValidationError{Field: "bank_iban", Message: "invalid French IBAN"})
		}
	case country.USA:
		if data.SSN != nil && !validator.IsValidSSN(*data.SSN) {
			errs = append(errs, validator.ValidationError{Field: "ssn", Message: "invalid SSN format"})
		}
		if data.RoutingNumber != nil && !validator.IsValidRoutingNumber(*data.RoutingNumber) {
			errs = append(errs, validator.ValidationError{Field: "routing_number", Message: "invalid routing number"})
		}
	}

	return errs
}

type UpdateEmployeeRequest struct {
	EmployeeID          int64               `json:"-"`
	FullName            *string             `json:"full_name,omitempty"`
	DateOfBirth         *string             `json:"date_of_birth,omitempty"`
	StartDate           *string             `json:"start_date,omitempty"`
	CountrySpecificData *CountryProfileData `json:"country_specific_data,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "cannot be empty"})
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeStatusRequest struct {
	IsActive bool `json:"is_active"`
}

type EmployeeResponse struct {
	EmployeeID   int64   `json:"employee_id"`
	FullName     string  `json:"full_name"`
	DateOfBirth  *string `json:"date_of_birth,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	CountryName  string  `json:"country_name"`
	CurrencyCode string  `json:"currency_code"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
}

type EmployeeDetailResponse struct {
	EmployeeResponse
	CountrySpecificData map[string]string `json:"country_specific_data"`
}

type BulkUploadRequest struct {
	Employees []CreateEmployeeRequest `json:"employees"`
}

type BulkRowResult struct {
	Row        int    `json:"row"`
	EmployeeID int64  `json:"employee_id,omitempty"`
	Status     string `json:"status,omitempty"`
	Error      string `json:"error,omitempty"`
}

type BulkUploadResponse struct {
	Message    string          `json:"message"`
	Successful int             `json:"successful"`
	Failed     int             `json:"failed"`
	Results    []BulkRowResult `json:"results"`
	Errors     []BulkRowResult `json:"errors"`
}

// NewEmployeeResponse maps the entity to its response form.
func NewEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		EmployeeID:   e.EmployeeID,
		FullName:     e.FullName,
		CountryName:  string(e.Country),
		CurrencyCode: e.CurrencyCode,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
	if e.DateOfBirth != nil {
		s := e.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &s
	}
	if e.StartDate != nil {
		s := e.StartDate.Format("2006-01-02")
		resp.StartDate = &s
	}
	return resp
}
