package helper

import (
	"testing"
	"time"

	"resto_manager/model"
)

func orderAt(created time.Time, total int64, orderType string, items ...model.OrderItem) model.Order {
	o := model.Order{Total: total, Type: orderType, Status: "nouvelle", Items: items}
	o.CreatedAt = created
	return o
}

func TestFilterOrdersByPeriod30DaysExcludesDay31(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	orders := []model.Order{
		orderAt(now.AddDate(0, 0, -5), 1000, "sur_place"),
		orderAt(now.AddDate(0, 0, -29), 2000, "emporter"),
		orderAt(now.AddDate(0, 0, -31), 4000, "livraison"),
		orderAt(now.AddDate(0, 0, -35), 8000, "sur_place"),
	}

	filtered := FilterOrdersByPeriod(orders, "30j", now)

	if len(filtered) != 2 {
		t.Fatalf("expected 2 orders inside the 30-day window, got %d", len(filtered))
	}
	if got := RevenueTotal(filtered); got != 3000 {
		t.Fatalf("expected revenue 3000, got %d", got)
	}
}

func TestBuildSalesSeriesDailyBuckets(t *testing.T) {
	now := time.Date(2025, 6, 30, 18, 0, 0, 0, time.UTC)
	orders := []model.Order{
		orderAt(now.Add(-2*time.Hour), 1500, "sur_place"),
		orderAt(now.AddDate(0, 0, -1), 500, "emporter"),
		orderAt(now.AddDate(0, 0, -1), 700, "emporter"),
	}

	series := BuildSalesSeries(FilterOrdersByPeriod(orders, "7j", now), "7j", now)

	if len(series) != 7 {
		t.Fatalf("expected 7 points, got %d", len(series))
	}
	last := series[6]
	if last.Label != "30/6" || last.Revenue != 1500 || last.Orders != 1 {
		t.Fatalf("unexpected last point: %+v", last)
	}
	prev := series[5]
	if prev.Revenue != 1200 || prev.Orders != 2 {
		t.Fatalf("unexpected day-before point: %+v", prev)
	}
	if series[0].Orders != 0 || series[0].Revenue != 0 {
		t.Fatalf("expected empty first point, got %+v", series[0])
	}
}

func TestBuildSalesSeriesMonthlyBuckets(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	orders := []model.Order{
		orderAt(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 1000, "sur_place"),
		orderAt(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), 2000, "sur_place"),
		orderAt(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 4000, "livraison"),
	}

	series := BuildSalesSeries(orders, "12m", now)

	if len(series) != 12 {
		t.Fatalf("expected 12 points, got %d", len(series))
	}
	if series[0].Label != "Jan" || series[0].Revenue != 3000 || series[0].Orders != 2 {
		t.Fatalf("unexpected January point: %+v", series[0])
	}
	if series[5].Revenue != 4000 {
		t.Fatalf("unexpected June point: %+v", series[5])
	}
}

func TestTopDishesStableTiesAndCap(t *testing.T) {
	now := time.Now()
	item := func(name string, qty int) model.OrderItem {
		return model.OrderItem{DishName: name, Quantity: qty, UnitPrice: 100, Subtotal: int64(qty) * 100}
	}
	orders := []model.Order{
		orderAt(now, 0, "sur_place", item("A", 5), item("C", 3)),
		orderAt(now, 0, "sur_place", item("B", 5)),
		orderAt(now, 0, "sur_place", item("D", 1), item("E", 1), item("F", 1), item("G", 1)),
	}

	for run := 0; run < 3; run++ {
		top := TopDishes(orders, 6)
		if len(top) != 6 {
			t.Fatalf("expected cap at 6 entries, got %d", len(top))
		}
		// A and B tie at 5; A was encountered first and must stay first.
		if top[0].Name != "A" || top[1].Name != "B" || top[2].Name != "C" {
			t.Fatalf("run %d: unexpected ranking %+v", run, top)
		}
	}
}

func TestTypeBreakdownOmitsZeroCounts(t *testing.T) {
	now := time.Now()
	orders := []model.Order{
		orderAt(now, 0, "sur_place"),
		orderAt(now, 0, "sur_place"),
		orderAt(now, 0, "livraison"),
	}

	breakdown := TypeBreakdown(orders)

	if len(breakdown) != 2 {
		t.Fatalf("expected 2 entries, got %+v", breakdown)
	}
	if breakdown[0].Type != "sur_place" || breakdown[0].Count != 2 {
		t.Fatalf("unexpected first entry: %+v", breakdown[0])
	}
	if breakdown[1].Type != "livraison" || breakdown[1].Count != 1 {
		t.Fatalf("unexpected second entry: %+v", breakdown[1])
	}
}

func TestRevenueChangePercent(t *testing.T) {
	if got := RevenueChangePercent(1500, 1000); got == nil || *got != 50 {
		t.Fatalf("expected +50%%, got %v", got)
	}
	if got := RevenueChangePercent(500, 1000); got == nil || *got != -50 {
		t.Fatalf("expected -50%%, got %v", got)
	}
	if got := RevenueChangePercent(1000, 0); got != nil {
		t.Fatalf("expected nil (no comparison available) when previous is zero, got %d", *got)
	}
}

func TestPreviousPeriodOrders(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	orders := []model.Order{
		orderAt(now.AddDate(0, 0, -3), 100, "sur_place"),  // current window
		orderAt(now.AddDate(0, 0, -10), 200, "sur_place"), // previous window
		orderAt(now.AddDate(0, 0, -20), 400, "sur_place"), // outside both
	}

	prev := PreviousPeriodOrders(orders, "7j", now)
	if len(prev) != 1 || prev[0].Total != 200 {
		t.Fatalf("unexpected previous window: %+v", prev)
	}
}
