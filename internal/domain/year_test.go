package domain

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
)

func TestYearRoundTrip(t *testing.T) {
	json := jsoniter.ConfigCompatibleWithStandardLibrary

	tests := []struct {
		name    string
		input   string
		want    string
		text    string
		wantErr bool
	}{
		{name: "number", input: `{"year":2010}`, want: `{"year":2010}`, text: "2010"},
		{name: "string", input: `{"year":"2010"}`, want: `{"year":"2010"}`, text: "2010"},
		{name: "free text", input: `{"year":"circa 1900"}`, want: `{"year":"circa 1900"}`, text: "circa 1900"},
		{name: "negative", input: `{"year":-300}`, want: `{"year":-300}`, text: "-300"},
		{name: "null", input: `{"year":null}`, want: `{"year":null}`, text: ""},
		{name: "absent", input: `{}`, want: `{"year":null}`, text: ""},
		{name: "bool rejected", input: `{"year":true}`, wantErr: true},
		{name: "object rejected", input: `{"year":{}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				Year Year `json:"year"`
			}
			err := json.Unmarshal([]byte(tt.input), &v)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}

			out, err := json.Marshal(v)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(out) != tt.want {
				t.Errorf("Marshal() = %s, want %s", out, tt.want)
			}
			if got := v.Year.String(); got != tt.text {
				t.Errorf("String() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestYearText(t *testing.T) {
	tests := []struct {
		input string
		want  Year
	}{
		{"", Year{}},
		{"1999", YearOf(1999)},
		{"MCMXCIX", Year{raw: `"MCMXCIX"`}},
	}

	for _, tt := range tests {
		if got := YearText(tt.input); got != tt.want {
			t.Errorf("YearText(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
	if !YearText("").IsZero() {
		t.Error("YearText(\"\").IsZero() = false, want true")
	}
}
