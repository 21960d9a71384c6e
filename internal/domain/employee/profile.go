package employee

import "github.com/globepay-hr/payroll-backend-go/internal/domain/country"

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToProfile builds the tagged profile variant for the employee's country
// from the request payload. Fields for other countries are ignored.
func (d *CountryProfileData) ToProfile(c country.Country) CountryProfile {
	p := CountryProfile{Country: c}
	switch c {
	case country.India:
		p.India = &IndiaProfile{
			AadhaarNumber: deref(d.AadhaarNumber),
			PAN:           deref(d.PAN),
			BankAccount:   deref(d.BankAccount),
			IFSC:          deref(d.IFSC),
		}
	case country.France:
		p.France = &FranceProfile{
			SocialSecurityNumber: deref(d.SocialSecurityNumber),
			BankIBAN:             deref(d.BankIBAN),
			DepartmentCode:       deref(d.DepartmentCode),
		}
	case country.USA:
		p.USA = &USAProfile{
			SSN:           deref(d.SSN),
			BankAccount:   deref(d.BankAccount),
			RoutingNumber: deref(d.RoutingNumber),
		}
	}
	return p
}

// ToMap flattens the profile into the response's field map, keyed by the
// country's wire field names.
func (p CountryProfile) ToMap() map[string]string {
	m := make(map[string]string)
	switch {
	case p.India != nil:
		m["aadhar_number"] = p.India.AadhaarNumber
		m["pan"] = p.India.PAN
		m["bank_account"] = p.India.BankAccount
		m["ifsc"] = p.India.IFSC
	case p.France != nil:
		m["numero_securite_sociale"] = p.France.SocialSecurityNumber
		m["bank_iban"] = p.France.BankIBAN
		m["department_code"] = p.France.DepartmentCode
	case p.USA != nil:
		m["ssn"] = p.USA.SSN
		m["bank_account"] = p.USA.BankAccount
		m["routing_number"] = p.USA.RoutingNumber
	}
	return m
}
