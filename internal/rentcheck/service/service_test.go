package service

import (
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"

	"rentcheck_backend/internal/rentcheck/transport"
	"rentcheck_backend/internal/wws"
	"rentcheck_backend/internal/wws/rules"
	"rentcheck_backend/platform/apperr"
	"rentcheck_backend/platform/config"
	"rentcheck_backend/platform/logger"
	"rentcheck_backend/platform/validator"
)

func newTestService(t *testing.T, batchLimit int) *Service {
	t.Helper()
	rs, err := rules.Load(2025)
	if err != nil {
		t.Fatalf("load rules: %v", err)
	}
	engine, err := wws.NewEngine(rs)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	cfg := &config.Config{BatchLimit: batchLimit, BatchConcurrency: 2}
	svc := New(engine, validator.New(), logger.NewWithWriter("production", io.Discard), cfg)
	svc.newID = func() string { return "test-id" }
	return svc
}

func studioRequest() transport.AssessRequest {
	return transport.AssessRequest{
		HousingType: "independent",
		PrivateArea: 25,
		EnergyLabel: "G",
		Kitchen:     transport.KitchenRequest{CounterLength: "<1m", Appliances: []string{"hob-gas", "fridge"}},
		Sanitary:    transport.SanitaryRequest{ToiletType: "standard", Facilities: []string{"washbasin", "shower"}},
		Heating:     transport.HeatingRequest{Type: "central", HeatedRooms: 1},
	}
}

func rent(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	appErr, ok := err.(*apperr.Error)
	if !ok || appErr.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := appErr.Details.([]apperr.FieldError)
	if !ok {
		t.Fatalf("expected field errors, got %T", appErr.Details)
	}
	out := make(map[string]string, len(details))
	for _, d := range details {
		out[d.Field] = d.Message
	}
	return out
}

func TestAssess_StatusAndGauge(t *testing.T) {
	svc := newTestService(t, 10)

	cases := []struct {
		name        string
		currentRent *decimal.Decimal
		wantStatus  transport.Status
		wantGauge   *float64
		wantOver    string
	}{
		{"no current rent", nil, transport.StatusRegulated, nil, ""},
		{"fair price", rent("200"), transport.StatusFairPrice, func() *float64 { v := 83.5; return &v }(), "0"},
		{"at the maximum", rent("239.53"), transport.StatusFairPrice, func() *float64 { v := 100.0; return &v }(), "0"},
		{"overpaying", rent("300"), transport.StatusOverpaying, func() *float64 { v := 100.0; return &v }(), "60.47"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := studioRequest()
			req.CurrentRent = tc.currentRent

			resp, err := svc.Assess(context.Background(), req)
			if err != nil {
				t.Fatalf("Assess: %v", err)
			}
			if resp.AssessmentID != "test-id" || resp.RuleYear != 2025 {
				t.Fatalf("unexpected id or year: %s / %d", resp.AssessmentID, resp.RuleYear)
			}
			if resp.Status != tc.wantStatus {
				t.Fatalf("expected status %s, got %s", tc.wantStatus, resp.Status)
			}
			if resp.MaxRent == nil || !resp.MaxRent.Equal(decimal.RequireFromString("239.53")) {
				t.Fatalf("expected max rent 239.53, got %v", resp.MaxRent)
			}
			switch {
			case tc.wantGauge == nil && resp.GaugePercent != nil:
				t.Fatalf("expected no gauge, got %v", *resp.GaugePercent)
			case tc.wantGauge != nil && (resp.GaugePercent == nil || *resp.GaugePercent != *tc.wantGauge):
				t.Fatalf("expected gauge %v, got %v", *tc.wantGauge, resp.GaugePercent)
			}
			if tc.wantOver == "" {
				if resp.Overpayment != nil || resp.IsOverpaying != nil {
					t.Fatalf("expected no verdict fields")
				}
				return
			}
			if resp.Overpayment == nil || !resp.Overpayment.Equal(decimal.RequireFromString(tc.wantOver)) {
				t.Fatalf("expected overpayment %s, got %v", tc.wantOver, resp.Overpayment)
			}
		})
	}
}

func TestAssess_Liberalized(t *testing.T) {
	svc := newTestService(t, 10)

	req := studioRequest()
	req.PrivateArea = 140
	req.EnergyLabel = "A++"
	req.CurrentRent = rent("1900")

	resp, err := svc.Assess(context.Background(), req)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if resp.Status != transport.StatusLiberalized || resp.Regime != wws.RegimeLiberalized {
		t.Fatalf("expected liberalized, got %s / %s", resp.Status, resp.Regime)
	}
	if resp.MaxRent != nil || resp.GaugePercent != nil || resp.IsOverpaying != nil {
		t.Fatalf("expected no max rent, gauge or verdict for a liberalized unit")
	}
}

func TestAssess_RequestValidation(t *testing.T) {
	svc := newTestService(t, 10)

	req := studioRequest()
	req.EnergyLabel = "H"
	req.Kitchen.Appliances = []string{"fridge", "microwave"}
	req.Heating.HeatedRooms = 0

	_, err := svc.Assess(context.Background(), req)
	got := fields(t, err)
	for _, field := range []string{"energyLabel", "kitchen.appliances[1]", "heating.heatedRooms"} {
		if _, ok := got[field]; !ok {
			t.Errorf("expected an error for %s, got %v", field, got)
		}
	}
}

func TestAssess_AcceptsEveryVariant(t *testing.T) {
	svc := newTestService(t, 10)

	for _, label := range append(append([]wws.EnergyLabel{}, wws.DefinedLabels...), wws.LabelUnknown) {
		req := studioRequest()
		req.EnergyLabel = string(label)
		if _, err := svc.Assess(context.Background(), req); err != nil {
			t.Errorf("label %s: %v", label, err)
		}
	}
	for _, counter := range wws.CounterLengths {
		req := studioRequest()
		req.Kitchen.CounterLength = string(counter)
		if _, err := svc.Assess(context.Background(), req); err != nil {
			t.Errorf("counter %s: %v", counter, err)
		}
	}
	all := studioRequest()
	all.Kitchen.Appliances = nil
	for _, a := range wws.Appliances {
		all.Kitchen.Appliances = append(all.Kitchen.Appliances, string(a))
	}
	all.Sanitary.Facilities = nil
	for _, f := range wws.Facilities {
		all.Sanitary.Facilities = append(all.Sanitary.Facilities, string(f))
	}
	if _, err := svc.Assess(context.Background(), all); err != nil {
		t.Errorf("all appliances and facilities: %v", err)
	}
	for _, toilet := range wws.ToiletTypes {
		req := studioRequest()
		req.Sanitary.ToiletType = string(toilet)
		if _, err := svc.Assess(context.Background(), req); err != nil {
			t.Errorf("toilet %s: %v", toilet, err)
		}
	}
	for _, heating := range wws.HeatingTypes {
		req := studioRequest()
		req.Heating.Type = string(heating)
		if _, err := svc.Assess(context.Background(), req); err != nil {
			t.Errorf("heating %s: %v", heating, err)
		}
	}
}

func TestToUnit_SharedOnlyFieldsRejectedOnIndependent(t *testing.T) {
	two := 2
	area := 10.0

	req := studioRequest()
	req.Kitchen.Sharers = &two
	req.SharedArea = &area
	req.Outdoor.Sharers = &two

	_, err := ToUnit(req)
	got := fields(t, err)
	for _, field := range []string{"kitchen.sharers", "sharedArea", "outdoor.sharers"} {
		if got[field] != "only allowed for shared housing" {
			t.Errorf("%s: unexpected message %q", field, got[field])
		}
	}
}

func TestToUnit_Shared(t *testing.T) {
	three := 3
	area := 18.0
	garden := 40.0

	req := studioRequest()
	req.HousingType = "shared"
	req.Kitchen.Sharers = &three
	req.SharedArea = &area
	req.Outdoor.SharedArea = &garden
	req.Outdoor.Sharers = &three

	unit, err := ToUnit(req)
	if err != nil {
		t.Fatalf("ToUnit: %v", err)
	}
	shared, ok := unit.(*wws.SharedUnit)
	if !ok {
		t.Fatalf("expected *wws.SharedUnit, got %T", unit)
	}
	if shared.SharedArea != 18 || *shared.KitchenSharers != 3 || shared.SanitarySharers != nil {
		t.Fatalf("unexpected shared unit %+v", shared)
	}
	if shared.SharedOutdoor == nil || shared.SharedOutdoor.Area != 40 || shared.SharedOutdoor.Sharers != 3 {
		t.Fatalf("unexpected shared outdoor %+v", shared.SharedOutdoor)
	}

	req.Valuation = rent("300000")
	req.Outdoor.Sharers = nil
	got := fields(t, func() error { _, err := ToUnit(req); return err }())
	if _, ok := got["valuation"]; !ok {
		t.Errorf("expected valuation to be rejected on shared housing")
	}
	if _, ok := got["outdoor.sharers"]; !ok {
		t.Errorf("expected outdoor.sharers to be required with outdoor.sharedArea")
	}
}

func TestAssessBatch_PreservesOrderAndReportsItemErrors(t *testing.T) {
	svc := newTestService(t, 10)

	bad := studioRequest()
	bad.PrivateArea = 0
	big := studioRequest()
	big.PrivateArea = 160

	req := transport.BatchRequest{Items: []transport.AssessRequest{studioRequest(), bad, big}}
	resp, err := svc.AssessBatch(context.Background(), req)
	if err != nil {
		t.Fatalf("AssessBatch: %v", err)
	}
	if resp.Succeeded != 2 || resp.Failed != 1 || len(resp.Items) != 3 {
		t.Fatalf("unexpected counts %+v", resp)
	}
	for i, item := range resp.Items {
		if item.Index != i {
			t.Fatalf("item %d reports index %d", i, item.Index)
		}
	}
	if resp.Items[1].Error == nil || resp.Items[1].Result != nil {
		t.Fatalf("expected item 1 to fail, got %+v", resp.Items[1])
	}
	if resp.Items[0].Result.Breakdown.TotalPoints >= resp.Items[2].Result.Breakdown.TotalPoints {
		t.Fatalf("expected the larger unit to score more points")
	}
}

func TestAssessBatch_Limits(t *testing.T) {
	svc := newTestService(t, 2)

	req := transport.BatchRequest{Items: []transport.AssessRequest{studioRequest(), studioRequest(), studioRequest()}}
	if _, err := svc.AssessBatch(context.Background(), req); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected batch over the limit to be rejected, got %v", err)
	}

	if _, err := svc.AssessBatch(context.Background(), transport.BatchRequest{}); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected empty batch to be rejected, got %v", err)
	}
}

func TestAssessBatch_Cancelled(t *testing.T) {
	svc := newTestService(t, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.AssessBatch(ctx, transport.BatchRequest{Items: []transport.AssessRequest{studioRequest()}})
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected cancelled batch to be unavailable, got %v", err)
	}
}

func TestRules(t *testing.T) {
	svc := newTestService(t, 7)

	got := svc.Rules()
	if got.Year != 2025 || got.LiberalizationPoints != 187 || got.BatchLimit != 7 {
		t.Fatalf("unexpected rules summary %+v", got)
	}
	if got.RentTable.MinPoints >= got.RentTable.MaxPoints || !got.RentTable.MinRent.LessThan(got.RentTable.MaxRent) {
		t.Fatalf("unexpected rent range %+v", got.RentTable)
	}
	if len(got.AvailableYears) == 0 {
		t.Fatalf("expected available years")
	}
}
