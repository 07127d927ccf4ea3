package catch

import (
	"errors"
	"testing"
)

func TestExpectedAttempts(t *testing.T) {
	got, err := ExpectedAttempts(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Fatalf("ExpectedAttempts(0.5) = %v, want exactly 2", got)
	}

	got, err = ExpectedAttempts(1)
	if err != nil || got != 1 {
		t.Fatalf("ExpectedAttempts(1) = %v, %v; want 1, nil", got, err)
	}

	if _, err := ExpectedAttempts(0); !errors.Is(err, ErrDegenerateProb) {
		t.Fatalf("p=0 must return ErrDegenerateProb, got %v", err)
	}
	if _, err := ExpectedAttempts(-0.1); !errors.Is(err, ErrInvalidProb) {
		t.Fatalf("negative p must return ErrInvalidProb, got %v", err)
	}
}

func TestAttemptsForConfidence(t *testing.T) {
	n, fallback, err := AttemptsForConfidence(0.5, 0.99, 0.003)
	if err != nil {
		t.Fatal(err)
	}
	if fallback {
		t.Fatal("fallback must not trigger for p=0.5")
	}
	want := 6.643856189774724 // log(0.01)/log(0.5)
	if diff := n - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("n = %v, want %v", n, want)
	}
}

func TestAttemptsForConfidenceFallback(t *testing.T) {
	// p == 0 substitutes the base rate rather than dividing by log(1)
	n, fallback, err := AttemptsForConfidence(0, 0.99, 0.003)
	if err != nil {
		t.Fatal(err)
	}
	if !fallback {
		t.Fatal("fallback flag must be set when p=0")
	}
	want, _, err := AttemptsForConfidence(0.003, 0.99, 0.003)
	if err != nil {
		t.Fatal(err)
	}
	if n != want {
		t.Fatalf("fallback n = %v, want same as base rate %v", n, want)
	}
}

func TestAttemptsForConfidenceGuards(t *testing.T) {
	if _, _, err := AttemptsForConfidence(1, 0.99, 0.003); !errors.Is(err, ErrDegenerateProb) {
		t.Fatalf("p=1 must return ErrDegenerateProb, got %v", err)
	}
	if _, _, err := AttemptsForConfidence(0.5, 0, 0.003); !errors.Is(err, ErrInvalidConfidence) {
		t.Fatalf("target=0 must return ErrInvalidConfidence, got %v", err)
	}
	if _, _, err := AttemptsForConfidence(0.5, 1, 0.003); !errors.Is(err, ErrInvalidConfidence) {
		t.Fatalf("target=1 must return ErrInvalidConfidence, got %v", err)
	}
	if _, _, err := AttemptsForConfidence(0, 0.99, 0); !errors.Is(err, ErrDegenerateProb) {
		t.Fatalf("p=0 with zero base rate must return ErrDegenerateProb, got %v", err)
	}
	if _, _, err := AttemptsForConfidence(1.5, 0.99, 0.003); !errors.Is(err, ErrInvalidProb) {
		t.Fatalf("p>1 must return ErrInvalidProb, got %v", err)
	}
}
