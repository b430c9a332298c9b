package util

import "testing"

func TestParseFloat(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain", input: "110", want: 110},
		{name: "decimal dot", input: "1.5", want: 1.5},
		{name: "decimal comma", input: "1,5", want: 1.5},
		{name: "thousand dot", input: "1.000", want: 1000},
		{name: "thousand space decimal comma", input: "1 234,5", want: 1234.5},
		{name: "thousand dot decimal comma", input: "1.234,5", want: 1234.5},
		{name: "thousand comma decimal dot", input: "1,234.5", want: 1234.5},
		{name: "million dot groups decimal comma", input: "1.234.567,89", want: 1234567.89},
		{name: "non-breaking space", input: "12 345", want: 12345},
		{name: "negative comma", input: "-0,25", want: -0.25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFloat(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestParseFloatRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "n/a", "12,34,56x"} {
		if _, err := ParseFloat(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}
