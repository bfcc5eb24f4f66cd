package validator

import (
	"testing"
	"time"
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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", "2023-02-29", ""}
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

func TestIsValidMonth(t *testing.T) {
	got, ok := IsValidMonth("2024-02")
	if !ok {
		t.Fatalf("IsValidMonth(%q) = false, want true", "2024-02")
	}
	want := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("IsValidMonth(%q) = %v, want %v", "2024-02", got, want)
	}

	invalid := []string{"2024-13", "2024-2-1", "2024/02", "02-2024", "2024-02-01", ""}
	for _, s := range invalid {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestOneOf(t *testing.T) {
	allowed := []string{"asc", "desc"}
	if _, ok := OneOf("asc", allowed); !ok {
		t.Errorf("OneOf('asc') = false, want true")
	}
	msg, ok := OneOf("ASC", allowed)
	if ok {
		t.Errorf("OneOf('ASC') = true, want false")
	}
	if msg != "must be one of: asc, desc" {
		t.Errorf("OneOf('ASC') message = %q", msg)
	}
}

func TestValidationErrors_AddAndErr(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Fatalf("empty ValidationErrors.Err() = %v, want nil", errs.Err())
	}

	errs.Add("date", "date is required")
	err := errs.Err()
	if err == nil {
		t.Fatalf("ValidationErrors.Err() = nil, want error")
	}
	if got := err.Error(); got != "date: date is required" {
		t.Errorf("Err().Error() = %q", got)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "invalid"},
		{Field: "sort_by", Message: "required"},
	}
	got := errs.Error()
	want := "date: invalid; sort_by: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "invalid"},
		{Field: "month", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"date": "invalid", "month": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
