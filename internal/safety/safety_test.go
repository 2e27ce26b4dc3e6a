package safety

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTopic(t *testing.T) {
	cases := []struct {
		name  string
		topic string
		want  error
	}{
		{name: "ok", topic: "  veteran-owned coffee  ", want: nil},
		{name: "unicode at limit", topic: strings.Repeat("é", 100), want: nil},
		{name: "empty", topic: "   ", want: ErrEmpty},
		{name: "too long", topic: strings.Repeat("a", 101), want: ErrTooLong},
		{name: "profanity", topic: "selling shit fast", want: ErrProfanity},
		{name: "link", topic: "visit www.example.com", want: ErrLink},
		{name: "control", topic: "line\nbreak", want: ErrControl},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTopic(tc.topic, 100)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected valid topic, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !strings.HasPrefix(err.Error(), "topic ") {
				t.Fatalf("error should name the field: %q", err.Error())
			}
		})
	}
}
