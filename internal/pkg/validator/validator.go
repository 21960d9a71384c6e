package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Aadhaar validation (Indian national ID): 12 digits.
func IsValidAadhaar(aadhaar string) bool {
	return len(aadhaar) == 12 && IsNumeric(aadhaar)
}

// PAN validation (Indian tax ID): 5 letters, 4 digits, 1 letter.
var panRegex = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

func IsValidPAN(pan string) bool {
	return panRegex.MatchString(strings.ToUpper(pan))
}

// IFSC validation (Indian bank branch code): 4 letters, '0', 6 alphanumerics.
var ifscRegex = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)

func IsValidIFSC(ifsc string) bool {
	return ifscRegex.MatchString(strings.ToUpper(ifsc))
}

// IBAN validation, French form: FR + 2 check digits + 23 alphanumerics.
var ibanFrRegex = regexp.MustCompile(`^FR[0-9]{2}[A-Z0-9]{23}$`)

func IsValidFrenchIBAN(iban string) bool {
	normalized := strings.ToUpper(strings.ReplaceAll(iban, " ", ""))
	return ibanFrRegex.MatchString(normalized)
}

// French social security number (numéro de sécurité sociale): 13 digits
// plus a 2-digit key.
func IsValidFrenchSSN(ssn string) bool {
	normalized := strings.ReplaceAll(ssn, " ", "")
	return len(normalized) == 15 && IsNumeric(normalized)
}

// US SSN validation: accepts "123-45-6789" or 9 plain digits.
var ssnRegex = regexp.MustCompile(`^[0-9]{3}-?[0-9]{2}-?[0-9]{4}$`)

func IsValidSSN(ssn string) bool {
	return ssnRegex.MatchString(ssn)
}

// ABA routing number validation: 9 digits with a valid checksum.
func IsValidRoutingNumber(routing string) bool {
	if len(routing) != 9 || !IsNumeric(routing) {
		return false
	}
	sum := 0
	for i := 0; i < 9; i += 3 {
		sum += 3 * int(routing[i]-'0')
		sum += 7 * int(routing[i+1]-'0')
		sum += int(routing[i+2] - '0')
	}
	return sum%10 == 0
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
