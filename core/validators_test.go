package core

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "empty", email: ""},
		{name: "no at", email: "example.com"},
		{name: "at is first char", email: "@example.com"},
		{name: "no dot after at", email: "user@examplecom"},
		{name: "dot only before at", email: "user.name@examplecom"},
		{name: "dot is last char", email: "user@example."},
		{name: "valid", email: "s1@example.com", want: true},
		{name: "valid subdomain", email: "user@mail.example.com", want: true},
		{name: "valid single char tld", email: "user@example.c", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidGrade(t *testing.T) {
	tests := []struct {
		name  string
		grade int
		want  bool
	}{
		{name: "negative", grade: -1},
		{name: "zero", grade: 0, want: true},
		{name: "mid", grade: 85, want: true},
		{name: "max", grade: 100, want: true},
		{name: "above max", grade: 101},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidGrade(tt.grade); got != tt.want {
				t.Errorf("IsValidGrade() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidIndex(t *testing.T) {
	tests := []struct {
		name   string
		idx    int
		length int
		want   bool
	}{
		{name: "negative", idx: -1, length: 3},
		{name: "first", idx: 0, length: 3, want: true},
		{name: "last", idx: 2, length: 3, want: true},
		{name: "out of range", idx: 3, length: 3},
		{name: "empty collection", idx: 0, length: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidIndex(tt.idx, tt.length); got != tt.want {
				t.Errorf("IsValidIndex() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidString(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name string
		s    string
		want bool
	}{
		{name: "empty", s: ""},
		{name: "ok", s: "Mathematics", want: true},
		{name: "max len", s: string(long[:100]), want: true},
		{name: "too long", s: string(long)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidString(tt.s); got != tt.want {
				t.Errorf("IsValidString() = %v, want %v", got, tt.want)
			}
		})
	}
}
