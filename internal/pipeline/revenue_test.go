package pipeline

import (
	"testing"

	"github.com/theirongolddev/runway/internal/model"
)

func TestComposeRevenue_MonthThree(t *testing.T) {
	_, mau, err := GrowthCurve(36, 0.34, 0.03)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rev := ComposeRevenue(mau, Pricing{
		MonthlyPrice:     320,
		AnnualPrice:      3200,
		SubscriptionRate: 0.02,
		RPM:              65,
	})

	wantSub := 1340 * 0.02 * (320 + 3200.0/12)
	if got := rev.Subscription.Month(3); !approxEqual(got, wantSub, 1e-6) {
		t.Errorf("subscription revenue month 3 = %v, want %v", got, wantSub)
	}
	if got := rev.Subscription.Month(3); !approxEqual(got, 15722.67, 0.01) {
		t.Errorf("subscription revenue month 3 = %.2f, want ~15722.67", got)
	}

	wantAd := 1340 * 0.98 * 65 / 1000.0
	if got := rev.Ad.Month(3); !approxEqual(got, wantAd, 1e-6) {
		t.Errorf("ad revenue month 3 = %v, want %v", got, wantAd)
	}
	if got := rev.Total.Month(3); !approxEqual(got, wantSub+wantAd, 1e-6) {
		t.Errorf("total revenue month 3 = %v, want %v", got, wantSub+wantAd)
	}
}

func TestComposeRevenue_DormantMonthsEarnNothing(t *testing.T) {
	mau := model.Series{500, 500, 500, 500}
	rev := ComposeRevenue(mau, Pricing{MonthlyPrice: 10, SubscriptionRate: 0.5, RPM: 100})

	for i := 0; i < DormantMonths; i++ {
		if rev.Subscription[i] != 0 || rev.Ad[i] != 0 || rev.Total[i] != 0 {
			t.Fatalf("month %d revenue = %v/%v/%v, want zero", i+1, rev.Subscription[i], rev.Ad[i], rev.Total[i])
		}
	}
	if rev.Total[2] == 0 {
		t.Fatal("month 3 revenue is zero, want positive")
	}
}

func TestComposeRevenue_TotalIsSum(t *testing.T) {
	mau := model.Series{0, 0, 1000, 2500, 9000}
	rev := ComposeRevenue(mau, Pricing{MonthlyPrice: 320, AnnualPrice: 3200, SubscriptionRate: 0.03, RPM: 65})
	if rev.Total.Len() != mau.Len() {
		t.Fatalf("total len = %d, want %d", rev.Total.Len(), mau.Len())
	}
	for i := range mau {
		if !approxEqual(rev.Total[i], rev.Subscription[i]+rev.Ad[i], 1e-9) {
			t.Errorf("month %d total = %v, want %v", i+1, rev.Total[i], rev.Subscription[i]+rev.Ad[i])
		}
	}
}

func TestComposeRevenue_AllSubscribers(t *testing.T) {
	mau := model.Series{0, 0, 100, 100}
	rev := ComposeRevenue(mau, Pricing{MonthlyPrice: 12, SubscriptionRate: 1, RPM: 65})
	if rev.Ad.Month(3) != 0 {
		t.Errorf("ad revenue = %v, want 0 when every user subscribes", rev.Ad.Month(3))
	}
	if rev.Subscription.Month(3) != 1200 {
		t.Errorf("subscription revenue = %v, want 1200", rev.Subscription.Month(3))
	}
}

func TestPricing_BlendedPrice(t *testing.T) {
	p := Pricing{MonthlyPrice: 320, AnnualPrice: 3600}
	if got := p.BlendedPrice(); got != 620 {
		t.Errorf("BlendedPrice = %v, want 620", got)
	}
}
