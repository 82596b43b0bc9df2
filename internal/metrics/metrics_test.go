package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveDebtComputation(t *testing.T) {
	m := New()

	m.ObserveDebtComputation(2*time.Millisecond, 3)
	m.ObserveDebtComputation(time.Millisecond, 0)

	if got := testutil.ToFloat64(m.DebtComputations); got != 2 {
		t.Errorf("debt_computations_total = %v, want 2", got)
	}
	if got := testutil.CollectAndCount(m.ComputeDuration); got != 1 {
		t.Errorf("expected one duration histogram, got %d", got)
	}
}

func TestObserveRPC(t *testing.T) {
	m := New()

	m.ObserveRPC("/roomsplit.v1.ExpenseService/AddExpense", "ok", time.Millisecond)
	m.ObserveRPC("/roomsplit.v1.ExpenseService/AddExpense", "ok", time.Millisecond)
	m.ObserveRPC("/roomsplit.v1.ExpenseService/AddExpense", "invalid_argument", time.Millisecond)

	ok := m.RPCRequests.WithLabelValues("/roomsplit.v1.ExpenseService/AddExpense", "ok")
	if got := testutil.ToFloat64(ok); got != 2 {
		t.Errorf("ok requests = %v, want 2", got)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveDebtComputation(time.Millisecond, 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "roomsplit_debt_computations_total 1") {
		t.Errorf("metrics output missing counter:\n%s", body)
	}
}
