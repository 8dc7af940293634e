package model

import (
	"errors"
	"testing"

	apperrors "github.com/psds-microservice/medicine-catalog/internal/errors"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		m    Medicine
		ok   bool
	}{
		{"complete", Medicine{GenericName: "DIAZEPAM", Concentration: "5MG", Presentation: "COMPRIMIDO"}, true},
		{"no name", Medicine{Concentration: "5MG", Presentation: "COMPRIMIDO"}, false},
		{"blank concentration", Medicine{GenericName: "DIAZEPAM", Concentration: "  ", Presentation: "COMPRIMIDO"}, false},
		{"no presentation", Medicine{GenericName: "DIAZEPAM", Concentration: "5MG"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.m.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, apperrors.ErrInvalidMedicine) {
				t.Fatalf("got %v, want ErrInvalidMedicine", err)
			}
		})
	}
}

func TestKeyIgnoresID(t *testing.T) {
	a := Medicine{ID: "a", GenericName: "HALOPERIDOL", Concentration: "1MG", Presentation: "COMPRIMIDO"}
	b := Medicine{ID: "b", GenericName: "HALOPERIDOL", Concentration: "1MG", Presentation: "COMPRIMIDO"}
	if a.Key() != b.Key() {
		t.Fatalf("keys differ: %v vs %v", a.Key(), b.Key())
	}
	c := b
	c.Concentration = "5MG"
	if a.Key() == c.Key() {
		t.Fatal("keys with different concentration must differ")
	}
	if got := a.Key().String(); got != "HALOPERIDOL 1MG COMPRIMIDO" {
		t.Fatalf("Key().String() = %q", got)
	}
}
