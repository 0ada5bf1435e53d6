package tallybook

import (
	"encoding/json"
	"io"
	"strings"
	"testing"
)

func TestDirGatewayMissingFile(t *testing.T) {
	gw := DirGateway{Dir: t.TempDir()}
	r, err := gw.Load(KindCompany)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("missing file yields %d bytes, want an empty stream", len(data))
	}
}

func TestDirGatewayRoundTrip(t *testing.T) {
	gw := DirGateway{Dir: t.TempDir()}
	b, err := Open(gw, Options{Currency: "USD", Owner: "Owner"})
	if err != nil {
		t.Fatal(err)
	}
	company := b.Active()
	e := NewEmployee("Ann", "Engineer", USD(3000), MustParseDate("2025-01-01"))
	e.Email = "ann@example.com"
	if err := b.AddEmployee(company, e); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddAdvance(e.ID, SalaryAdvance{Amount: USD(500), Date: MustParseDate("2025-01-10"), Reason: "rent"}); err != nil {
		t.Fatal(err)
	}
	c := NewClient("Acme", "Acme Corp", "acme@example.com", "")
	if err := b.AddClient(company, c); err != nil {
		t.Fatal(err)
	}
	x := NewExpense("Taxi", "", USD(45), Travel, MustParseDate("2025-01-05"))
	if err := b.AddExpense(company, x); err != nil {
		t.Fatal(err)
	}

	// A second book opened on the same directory sees the same records.
	b2, err := Open(gw, Options{Currency: "USD"})
	if err != nil {
		t.Fatal(err)
	}
	if len(b2.Companies()) != 1 || b2.Active() != company {
		t.Errorf("companies after reopen: %d active %s", len(b2.Companies()), b2.Active().Short())
	}

	// Compare through JSON: decimal values may carry a different internal
	// exponent after a round trip while being the same number.
	e2, err := b2.Employee(e.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := mustJSON(t, e2), mustJSON(t, e); got != want {
		t.Errorf("employee round trip:\n got %s\nwant %s", got, want)
	}
	c2, err := b2.Client(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := mustJSON(t, c2), mustJSON(t, c); got != want {
		t.Errorf("client round trip:\n got %s\nwant %s", got, want)
	}
	x2, err := b2.Expense(x.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := mustJSON(t, x2), mustJSON(t, x); got != want {
		t.Errorf("expense round trip:\n got %s\nwant %s", got, want)
	}
}

func TestDecodeReportsLineNumber(t *testing.T) {
	gw := newMemGateway()
	gw.files[KindCompany] = []byte("{\"id\":\"a\",\"name\":\"ok\"}\nnot json\n")
	_, err := Open(gw, Options{})
	if err == nil {
		t.Fatal("corrupt line did not fail the open")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the corrupt line", err)
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
