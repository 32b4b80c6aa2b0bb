package timon_test

import (
	"testing"

	timon "github.com/spietras/timon-interpreter"
)

func TestEvalArithmeticAndReturn(t *testing.T) {
	result, err := timon.Eval(`return 2 + 3 * 4;`)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if result.Value == nil || result.Value.String() != "14" {
		t.Fatalf("got %v, want 14", result.Value)
	}
}

func TestEvalPrintAccumulatesOutput(t *testing.T) {
	result, err := timon.Eval(`print "hello"; print 1 + 1;`)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if result.Output != "hello\n2\n" {
		t.Fatalf("got %q", result.Output)
	}
}

func TestEvalIfElse(t *testing.T) {
	result, err := timon.Eval(`
var x = 5;
if x < 10 {
  return "small";
} else {
  return "large";
};
`)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if result.Value.String() != "small" {
		t.Fatalf("got %v, want small", result.Value)
	}
}

func TestEvalFromLoopAccumulates(t *testing.T) {
	result, err := timon.Eval(`
var total = 0;
from 01.01.2024 to 05.01.2024 by days as i {
  total = total + i.days;
};
return total;
`)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if result.Value.String() != "15" {
		t.Fatalf("got %v, want 15", result.Value)
	}
}

func TestEvalFunctionCallArity(t *testing.T) {
	_, err := timon.Eval(`
fun add(a, b) {
  return a + b;
};
add(1);
`)
	if err == nil {
		t.Fatal("expected an arity mismatch error")
	}
}

func TestEvalDateArithmetic(t *testing.T) {
	result, err := timon.Eval(`return 31.01.2024 + '1M';`)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if result.Value.String() != "29.02.2024~00:00:00" {
		t.Fatalf("got %v, want 29.02.2024~00:00:00", result.Value)
	}
}

func TestEvalFromLoopIncludesEndBound(t *testing.T) {
	result, err := timon.Eval(`
var d = 01.01.2024;
var count = 0;
from d to d + '3D' by days as cur {
  count = count + 1;
};
return count;
`)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if result.Value.String() != "4" {
		t.Fatalf("got %v, want 4", result.Value)
	}
}

func TestSessionPersistsVariablesAcrossEval(t *testing.T) {
	session := timon.NewSession()
	if _, err := session.Eval(`var x = 10;`); err != nil {
		t.Fatalf("Eval: %v", err)
	}
	result, err := session.Eval(`return x + 5;`)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if result.Value.String() != "15" {
		t.Fatalf("got %v, want 15", result.Value)
	}
}
