package payment

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestNormalize_AmountShapes(t *testing.T) {
	if p := Normalize(decode(t, `{"id":"x1","amount":150.5}`)); p.Amount != 150.5 {
		t.Errorf("number amount = %v", p.Amount)
	}
	if p := Normalize(decode(t, `{"id":"x2","amount":"89.90"}`)); p.Amount != 89.9 {
		t.Errorf("string amount = %v", p.Amount)
	}
	if p := Normalize(decode(t, `{"id":"x3","total":40}`)); p.Amount != 40 {
		t.Errorf("total fallback = %v", p.Amount)
	}
	if p := Normalize(decode(t, `{"id":"x4","amount":"garbage"}`)); p.Amount != 0 {
		t.Errorf("unparseable amount = %v", p.Amount)
	}
}

func TestNormalize_DerivedReference(t *testing.T) {
	p := Normalize(decode(t, `{"id":"65a1b2c3d4e5f60718293a4b"}`))
	if p.Reference != "PAY-18293A4B" {
		t.Errorf("reference = %q", p.Reference)
	}

	p = Normalize(decode(t, `{"id":"p1","invoiceNumber":"INV-77"}`))
	if p.Reference != "INV-77" {
		t.Errorf("explicit reference lost: %q", p.Reference)
	}

	p = Normalize(decode(t, `{"id":"ab"}`))
	if p.Reference != "PAY-AB" {
		t.Errorf("short id reference = %q", p.Reference)
	}
}

func TestNormalize_CurrencyAndNames(t *testing.T) {
	p := Normalize(decode(t, `{"id":"x","currency":"brl","patient":{"first":"Maria","last":"Gomes"}}`))
	if p.Currency != "BRL" {
		t.Errorf("currency = %q", p.Currency)
	}
	if p.PatientName != "Maria Gomes" {
		t.Errorf("patientName = %q", p.PatientName)
	}

	if p := Normalize(decode(t, `{"id":"y"}`)); p.Currency != "USD" {
		t.Errorf("default currency = %q", p.Currency)
	}
}

func TestNormalizeStatus_Aliases(t *testing.T) {
	cases := map[string]Status{
		"succeeded": StatusPaid,
		"PAGO":      StatusPaid,
		"created":   StatusPending,
		"reversed":  StatusRefunded,
		"declined":  StatusFailed,
		"???":       StatusPending,
	}
	for raw, want := range cases {
		if got := NormalizeStatus(raw); got != want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}
