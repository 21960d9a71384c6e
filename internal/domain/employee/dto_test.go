package employee

import (
	"testing"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validIndiaRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		EmployeeID: 1001,
		FullName:   "Priya Sharma",
		Country:    "India",
		CountrySpecificData: &CountryProfileData{
			AadhaarNumber: strPtr("123456789012"),
			PAN:           strPtr("ABCDE1234F"),
			BankAccount:   strPtr("0012345678"),
			IFSC:          strPtr("HDFC0001234"),
		},
	}
}

func TestCreateEmployeeRequest_Validate_Success(t *testing.T) {
	req := validIndiaRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateEmployeeRequest_Validate_MissingBasics(t *testing.T) {
	req := CreateEmployeeRequest{Country: "India"}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "full_name")
}

func TestCreateEmployeeRequest_Validate_UnknownCountry(t *testing.T) {
	req := validIndiaRequest()
	req.Country = "Germany"
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "country")
}

func TestCreateEmployeeRequest_Validate_CurrencyMismatch(t *testing.T) {
	req := validIndiaRequest()
	req.CurrencyCode = "USD"
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "currency_code")
}

func TestCreateEmployeeRequest_Validate_BadDates(t *testing.T) {
	req := validIndiaRequest()
	req.DateOfBirth = strPtr("31-12-1990")
	req.StartDate = strPtr("2024/01/01")
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "date_of_birth")
	assert.Contains(t, fields, "start_date")
}

func TestValidateProfileData_India(t *testing.T) {
	bad := &CountryProfileData{
		AadhaarNumber: strPtr("12345"),       // too short
		PAN:           strPtr("1234ABCDE"),   // wrong shape
		IFSC:          strPtr("HD0001234"),   // wrong shape
	}
	errs := ValidateProfileData(country.India, bad)
	fields := errs.ToMap()
	assert.Contains(t, fields, "aadhar_number")
	assert.Contains(t, fields, "pan")
	assert.Contains(t, fields, "ifsc")
}

func TestValidateProfileData_France(t *testing.T) {
	good := &CountryProfileData{
		SocialSecurityNumber: strPtr("189057512312345"),
		BankIBAN:             strPtr("FR1420041010050500013M02606"),
		DepartmentCode:       strPtr("75"),
	}
	assert.Empty(t, ValidateProfileData(country.France, good))

	bad := &CountryProfileData{
		SocialSecurityNumber: strPtr("12345"),
		BankIBAN:             strPtr("DE89370400440532013000"),
	}
	fields := ValidateProfileData(country.France, bad).ToMap()
	assert.Contains(t, fields, "numero_securite_sociale")
	assert.Contains(t, fields, "bank_iban")
}

func TestValidateProfileData_USA(t *testing.T) {
	good := &CountryProfileData{
		SSN:           strPtr("123-45-6789"),
		BankAccount:   strPtr("000123456789"),
		RoutingNumber: strPtr("021000021"),
	}
	assert.Empty(t, ValidateProfileData(country.USA, good))

	bad := &CountryProfileData{
		SSN:           strPtr("123-456-789"),
		RoutingNumber: strPtr("123456789"),
	}
	fields := ValidateProfileData(country.USA, bad).ToMap()
	assert.Contains(t, fields, "ssn")
	assert.Contains(t, fields, "routing_number")
}

// Fields for a different country than the employee's are simply ignored;
// only the owning country's rules apply.
func TestValidateProfileData_IgnoresOtherCountryFields(t *testing.T) {
	data := &CountryProfileData{
		SSN: strPtr("not-an-ssn"),
	}
	assert.Empty(t, ValidateProfileData(country.India, data))
}

func TestUpdateEmployeeRequest_Validate(t *testing.T) {
	req := UpdateEmployeeRequest{FullName: strPtr("  ")}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "full_name")

	req = UpdateEmployeeRequest{FullName: strPtr("New Name"), StartDate: strPtr("2026-02-01")}
	assert.NoError(t, req.Validate())
}
