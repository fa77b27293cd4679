package validation

import "testing"

func TestGroupNamePattern(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"Se_cs-21", true},
		{"Ma_ph-1", true},
		{"Se_cs-2126", true},
		{"se_cs-21", false},
		{"SE_cs-21", false},
		{"Se_c-21", false},
		{"Se_cs21", false},
		{"Se_cs-", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := GroupNameRegex.MatchString(tt.name); got != tt.valid {
			t.Errorf("GroupNameRegex(%q) = %v, want %v", tt.name, got, tt.valid)
		}
	}
}

func TestSlotTimePattern(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"09:00", true},
		{"23:59", true},
		{"00:00", true},
		{"24:00", false},
		{"9:00", false},
		{"09:60", false},
		{"0900", false},
	}
	for _, tt := range tests {
		if got := TimeRegex.MatchString(tt.value); got != tt.valid {
			t.Errorf("TimeRegex(%q) = %v, want %v", tt.value, got, tt.valid)
		}
	}
}

func TestValidateStructDomainTags(t *testing.T) {
	v := NewValidator()

	type form struct {
		Name      string `validate:"required,group_name"`
		StartTime string `validate:"required,slot_time"`
	}

	if err := v.ValidateStruct(form{Name: "Se_cs-21", StartTime: "09:00"}); err != nil {
		t.Fatalf("Valid form should pass, got %v", err)
	}

	err := v.ValidateStruct(form{Name: "badname", StartTime: "9am"})
	if err == nil {
		t.Fatal("Invalid form should fail")
	}
	fields := FormatValidationErrors(err)
	if fields["name"] == "" || fields["starttime"] == "" {
		t.Fatalf("Both fields should carry messages, got %v", fields)
	}
}

func TestValidateEmail(t *testing.T) {
	if !ValidateEmail("olena@example.com") {
		t.Error("Plain address should be valid")
	}
	if ValidateEmail("not-an-email") {
		t.Error("Address without domain should be invalid")
	}
	if ValidateEmail("") {
		t.Error("Empty address should be invalid")
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello\x00world  "); got != "helloworld" {
		t.Errorf("SanitizeString = %q", got)
	}
}
