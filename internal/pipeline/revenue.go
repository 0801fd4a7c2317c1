package pipeline

import "github.com/theirongolddev/runway/internal/model"

// Pricing holds the monetization inputs of the revenue stage.
type Pricing struct {
	MonthlyPrice     float64
	AnnualPrice      float64
	SubscriptionRate float64
	RPM              float64
}

// BlendedPrice is the monthly-equivalent amount each subscriber pays.
// Subscribers are charged the monthly price plus the annual price spread over
// twelve months, not one or the other.
func (p Pricing) BlendedPrice() float64 {
	return p.MonthlyPrice + p.AnnualPrice/12
}

// Revenue holds the parallel revenue series for a scenario.
type Revenue struct {
	Subscription model.Series
	Ad           model.Series
	Total        model.Series
}

// ComposeRevenue splits each month's MAU into paying subscribers and
// ad-monetized users. Dormant months earn nothing.
func ComposeRevenue(mau model.Series, p Pricing) Revenue {
	n := mau.Len()
	r := Revenue{
		Subscription: model.NewSeries(n),
		Ad:           model.NewSeries(n),
		Total:        model.NewSeries(n),
	}

	blended := p.BlendedPrice()
	for i := DormantMonths; i < n; i++ {
		users := mau[i]
		sub := users * p.SubscriptionRate * blended
		ad := users * (1 - p.SubscriptionRate) * p.RPM / 1000

		r.Subscription[i] = sub
		r.Ad[i] = ad
		r.Total[i] = sub + ad
	}

	return r
}
