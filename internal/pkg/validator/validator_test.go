package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidAadhaar(t *testing.T) {
	valid := []string{"123456789012"}
	invalid := []string{"12345678901", "1234567890123", "12345678901a", ""}
	for _, s := range valid {
		if !IsValidAadhaar(s) {
			t.Errorf("IsValidAadhaar(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidAadhaar(s) {
			t.Errorf("IsValidAadhaar(%q) = true, want false", s)
		}
	}
}

func TestIsValidPAN(t *testing.T) {
	valid := []string{"ABCDE1234F", "abcde1234f"}
	invalid := []string{"ABCD1234EF", "ABCDE12345", "ABCDE1234", ""}
	for _, s := range valid {
		if !IsValidPAN(s) {
			t.Errorf("IsValidPAN(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidPAN(s) {
			t.Errorf("IsValidPAN(%q) = true, want false", s)
		}
	}
}

func TestIsValidIFSC(t *testing.T) {
	valid := []string{"HDFC0001234", "sbin0005943"}
	invalid := []string{"HDFC1001234", "HDFC000123", "HDFC00012345", ""}
	for _, s := range valid {
		if !IsValidIFSC(s) {
			t.Errorf("IsValidIFSC(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidIFSC(s) {
			t.Errorf("IsValidIFSC(%q) = true, want false", s)
		}
	}
}

func TestIsValidFrenchIBAN(t *testing.T) {
	valid := []string{"FR1420041010050500013M02606", "FR14 2004 1010 0505 0001 3M02 606"}
	invalid := []string{"DE1420041010050500013M02606", "FR14200410100505", ""}
	for _, s := range valid {
		if !IsValidFrenchIBAN(s) {
			t.Errorf("IsValidFrenchIBAN(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidFrenchIBAN(s) {
			t.Errorf("IsValidFrenchIBAN(%q) = true, want false", s)
		}
	}
}

func TestIsValidFrenchSSN(t *testing.T) {
	valid := []string{"190057500412345", "1 90 05 75 004 123 45"}
	invalid := []string{"19005750041234", "1900575004123456", "19005750041234a", ""}
	for _, s := range valid {
		if !IsValidFrenchSSN(s) {
			t.Errorf("IsValidFrenchSSN(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidFrenchSSN(s) {
			t.Errorf("IsValidFrenchSSN(%q) = true, want false", s)
		}
	}
}

func TestIsValidSSN(t *testing.T) {
	valid := []string{"123-45-6789", "123456789"}
	invalid := []string{"123-456-789", "12-345-6789", "12345678", "1234567890", ""}
	for _, s := range valid {
		if !IsValidSSN(s) {
			t.Errorf("IsValidSSN(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidSSN(s) {
			t.Errorf("IsValidSSN(%q) = true, want false", s)
		}
	}
}

func TestIsValidRoutingNumber(t *testing.T) {
	// 021000021 (JPMorgan Chase) and 011401533 are well-known valid numbers
	valid := []string{"021000021", "011401533"}
	invalid := []string{"021000022", "12345678", "1234567890", "abcdefghi", ""}
	for _, s := range valid {
		if !IsValidRoutingNumber(s) {
			t.Errorf("IsValidRoutingNumber(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidRoutingNumber(s) {
			t.Errorf("IsValidRoutingNumber(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "ssn", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; ssn: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "ssn", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "ssn": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
