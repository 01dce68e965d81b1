package appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/caredash/caredash/internal/platform/session"
	"github.com/caredash/caredash/internal/platform/upstream"
)

// summaryFunc adapts a function to the summary source interfaces.
type summaryFunc func(ctx context.Context, id string) (PersonSummary, error)

func (f summaryFunc) Summary(ctx context.Context, id string) (PersonSummary, error) {
	return f(ctx, id)
}

// recordingSource counts lookups and serves from a fixed map.
type recordingSource struct {
	mu      sync.Mutex
	calls   []string
	byID    map[string]string
	failIDs map[string]bool
}

func (r *recordingSource) Summary(_ context.Context, id string) (PersonSummary, error) {
	r.mu.Lock()
	r.calls = append(r.calls, id)
	r.mu.Unlock()
	if r.failIDs[id] {
		return PersonSummary{}, errors.New("boom")
	}
	if name, ok := r.byID[id]; ok {
		return PersonSummary{ID: id, Name: name}, nil
	}
	return PersonSummary{}, errors.New("no such record")
}

func newTestService(t *testing.T, handler http.Handler, patients PatientSource, doctors DoctorSource) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	st := session.NewStore(t.TempDir(), "caredash-test", zerolog.Nop())
	up := upstream.NewClient(srv.URL, 5*time.Second, st, zerolog.Nop())
	return NewService(up, patients, doctors, zerolog.Nop(), 4, 42)
}

func TestFetchAll_EnrichesFromSources(t *testing.T) {
	patients := &recordingSource{byID: map[string]string{"p1": "Maria Gomes"}}
	doctors := &recordingSource{byID: map[string]string{"d1": "Nina Rao"}}
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"a1","patientId":"p1","doctorId":"d1","status":"booked","date":"2026-03-09T14:30:00Z"}]`))
	}), patients, doctors)

	appts, synthetic, err := svc.FetchAll(context.Background(), upstream.Query{})
	if err != nil {
		t.Fatal(err)
	}
	if synthetic || len(appts) != 1 {
		t.Fatalf("len = %d synthetic = %v", len(appts), synthetic)
	}
	a := appts[0]
	if a.PatientName != "Maria Gomes" || a.DoctorName != "Nina Rao" {
		t.Errorf("names = %q / %q", a.PatientName, a.DoctorName)
	}
	if a.Status != StatusScheduled {
		t.Errorf("status = %q", a.Status)
	}
	if a.DateLabel != "Mar 9, 2026" || a.TimeLabel != "2:30 PM" {
		t.Errorf("labels = %q / %q", a.DateLabel, a.TimeLabel)
	}
}

func TestFetchAll_FailedEnrichmentDegradesOnlyItsRecord(t *testing.T) {
	patients := &recordingSource{
		byID:    map[string]string{"p2": "Joao Silva"},
		failIDs: map[string]bool{"p1": true},
	}
	doctors := &recordingSource{byID: map[string]string{"d1": "Nina Rao"}}
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":"a1","patientId":"p1","doctorId":"d1"},
			{"id":"a2","patientId":"p2","doctorId":"d1"}
		]`))
	}), patients, doctors)

	appts, _, err := svc.FetchAll(context.Background(), upstream.Query{})
	if err != nil {
		t.Fatalf("a failed sub-fetch must never fail the collection: %v", err)
	}
	if appts[0].PatientName != UnknownPatient {
		t.Errorf("appts[0].PatientName = %q", appts[0].PatientName)
	}
	if appts[0].PatientID != "p1" {
		t.Errorf("stub must keep the reference id, got %q", appts[0].PatientID)
	}
	if appts[0].DoctorName != "Nina Rao" {
		t.Errorf("sibling lookup degraded: %q", appts[0].DoctorName)
	}
	if appts[1].PatientName != "Joao Silva" {
		t.Errorf("sibling record degraded: %q", appts[1].PatientName)
	}
}

func TestFetchAll_EmbeddedObjectsSkipLookups(t *testing.T) {
	patients := &recordingSource{}
	doctors := &recordingSource{}
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"a1","patient":{"_id":"p9","fullName":"Lena Brandt"},"doctor":{"id":"d9","name":"Omar Aziz"}}]`))
	}), patients, doctors)

	appts, _, err := svc.FetchAll(context.Background(), upstream.Query{})
	if err != nil {
		t.Fatal(err)
	}
	if appts[0].PatientName != "Lena Brandt" || appts[0].DoctorName != "Omar Aziz" {
		t.Errorf("embedded names lost: %q / %q", appts[0].PatientName, appts[0].DoctorName)
	}
	if appts[0].PatientID != "p9" || appts[0].DoctorID != "d9" {
		t.Errorf("embedded ids lost: %q / %q", appts[0].PatientID, appts[0].DoctorID)
	}
	if len(patients.calls) != 0 || len(doctors.calls) != 0 {
		t.Errorf("embedded objects must not trigger lookups: %v / %v", patients.calls, doctors.calls)
	}
}

func TestFetchAll_MissingReferencesBecomeStubs(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"a1"}]`))
	}), &recordingSource{}, &recordingSource{})

	appts, _, err := svc.FetchAll(context.Background(), upstream.Query{})
	if err != nil {
		t.Fatal(err)
	}
	if appts[0].PatientName != UnknownPatient || appts[0].DoctorName != UnknownDoctor {
		t.Errorf("names = %q / %q", appts[0].PatientName, appts[0].DoctorName)
	}
	if appts[0].DateLabel != "Not scheduled" || appts[0].TimeLabel != "" {
		t.Errorf("labels = %q / %q", appts[0].DateLabel, appts[0].TimeLabel)
	}
}

func TestFetchAll_MissingEndpointServesFallback(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}), &recordingSource{}, &recordingSource{})

	appts, synthetic, err := svc.FetchAll(context.Background(), upstream.Query{})
	if err != nil {
		t.Fatal(err)
	}
	if !synthetic || len(appts) == 0 {
		t.Fatalf("len = %d synthetic = %v", len(appts), synthetic)
	}
	for _, a := range appts {
		if !a.Synthetic {
			t.Fatal("fallback records must be marked synthetic")
		}
		if a.PatientName == "" || a.DoctorName == "" {
			t.Fatalf("fallback record missing names: %+v", a)
		}
	}
}

func TestFetchOne_Enriches(t *testing.T) {
	patients := summaryFunc(func(_ context.Context, id string) (PersonSummary, error) {
		return PersonSummary{ID: id, Name: "Maria Gomes"}, nil
	})
	doctors := summaryFunc(func(_ context.Context, id string) (PersonSummary, error) {
		return PersonSummary{ID: id, Name: "Nina Rao"}, nil
	})
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/appointments/a1" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"id":"a1","patient_id":"p1","doctor_id":"d1","status":"done"}`))
	}), patients, doctors)

	a, err := svc.FetchOne(context.Background(), "a1")
	if err != nil {
		t.Fatal(err)
	}
	if a.PatientName != "Maria Gomes" || a.DoctorName != "Nina Rao" || a.Status != StatusCompleted {
		t.Errorf("appointment = %+v", a)
	}
}

func TestNormalizeStatus_Aliases(t *testing.T) {
	cases := map[string]Status{
		"Booked":    StatusScheduled,
		"CONFIRMED": StatusScheduled,
		"fulfilled": StatusCompleted,
		"canceled":  StatusCancelled,
		"no-show":   StatusNoShow,
		"faltou":    StatusNoShow,
		"":          StatusScheduled,
		"whatever":  StatusScheduled,
	}
	for raw, want := range cases {
		if got := NormalizeStatus(raw); got != want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}
