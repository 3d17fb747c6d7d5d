package bench

import (
	"testing"

	"github.com/anupsv/groth-sahai/gs"
)

func TestRunToy1(t *testing.T) {
	res, err := Run(gs.Toy1(), 2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Name != "toy1" || res.Iterations != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Setup <= 0 || res.Commit <= 0 || res.Prove <= 0 || res.Verify <= 0 {
		t.Fatalf("expected positive stage durations, got %+v", res)
	}
}

func TestRunRejectsZeroIterations(t *testing.T) {
	if _, err := Run(gs.Toy1(), 0); err == nil {
		t.Fatal("expected an error for zero iterations")
	}
}

func TestRunAll(t *testing.T) {
	results, err := RunAll([]gs.Scenario{gs.Toy1(), gs.Toy2()}, 1)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}
