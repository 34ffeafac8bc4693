package helper

import (
	"math"
	"sort"
	"time"

	"resto_manager/constants"
	"resto_manager/model"
)

// Chart-ready aggregates for the statistics view. Everything in this file is
// pure: callers fetch the candidate orders (tenant-scoped, cancelled
// excluded) and pass them in with a reference time.

type SalesPoint struct {
	Label   string `json:"label"`
	Revenue int64  `json:"revenue"`
	Orders  int    `json:"orders"`
}

type TopDish struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int64  `json:"revenue"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

var frenchMonths = []string{"Jan", "Fév", "Mar", "Avr", "Mai", "Jun", "Jul", "Aoû", "Sep", "Oct", "Nov", "Déc"}

// FilterOrdersByPeriod keeps orders inside the selected window: a rolling
// 7/30 days, or the current calendar year for the 12-month view. An order
// older than the window by even a day falls out.
func FilterOrdersByPeriod(orders []model.Order, period string, now time.Time) []model.Order {
	var out []model.Order
	for _, o := range orders {
		switch period {
		case constants.STATS_PERIOD_7D:
			if age := now.Sub(o.CreatedAt); age >= 0 && age <= 7*24*time.Hour {
				out = append(out, o)
			}
		case constants.STATS_PERIOD_12M:
			if o.CreatedAt.Year() == now.Year() {
				out = append(out, o)
			}
		default: // 30j
			if age := now.Sub(o.CreatedAt); age >= 0 && age <= 30*24*time.Hour {
				out = append(out, o)
			}
		}
	}
	return out
}

// PreviousPeriodOrders selects the comparison window: the equal-length day
// window immediately before the current one, or the previous calendar year.
func PreviousPeriodOrders(orders []model.Order, period string, now time.Time) []model.Order {
	var out []model.Order
	for _, o := range orders {
		diff := now.Sub(o.CreatedAt)
		switch period {
		case constants.STATS_PERIOD_7D:
			if diff > 7*24*time.Hour && diff <= 14*24*time.Hour {
				out = append(out, o)
			}
		case constants.STATS_PERIOD_12M:
			if o.CreatedAt.Year() == now.Year()-1 {
				out = append(out, o)
			}
		default:
			if diff > 30*24*time.Hour && diff <= 60*24*time.Hour {
				out = append(out, o)
			}
		}
	}
	return out
}

// BuildSalesSeries buckets the filtered orders into chart points: one per
// day for the day windows, one per calendar month for 12m.
func BuildSalesSeries(filtered []model.Order, period string, now time.Time) []SalesPoint {
	if period == constants.STATS_PERIOD_12M {
		points := make([]SalesPoint, 12)
		for i, name := range frenchMonths {
			points[i] = SalesPoint{Label: name}
		}
		for _, o := range filtered {
			i := int(o.CreatedAt.Month()) - 1
			points[i].Revenue += o.Total
			points[i].Orders++
		}
		return points
	}

	days := 30
	if period == constants.STATS_PERIOD_7D {
		days = 7
	}

	points := make([]SalesPoint, 0, days)
	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, -(days - 1 - i))
		point := SalesPoint{Label: day.Format("2/1")}
		for _, o := range filtered {
			if sameDay(o.CreatedAt, day) {
				point.Revenue += o.Total
				point.Orders++
			}
		}
		points = append(points, point)
	}
	return points
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// TopDishes ranks dishes by units sold across the filtered orders, capped at
// limit entries. Ties keep first-encountered order (stable sort).
func TopDishes(filtered []model.Order, limit int) []TopDish {
	index := map[string]int{}
	var ranking []TopDish

	for _, o := range filtered {
		for _, item := range o.Items {
			i, seen := index[item.DishName]
			if !seen {
				index[item.DishName] = len(ranking)
				ranking = append(ranking, TopDish{Name: item.DishName})
				i = len(ranking) - 1
			}
			ranking[i].Quantity += item.Quantity
			ranking[i].Revenue += item.Subtotal
		}
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].Quantity > ranking[b].Quantity
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}

// TypeBreakdown counts orders per fulfillment type, omitting types with no
// orders.
func TypeBreakdown(filtered []model.Order) []TypeCount {
	counts := map[string]int{}
	for _, o := range filtered {
		counts[o.Type]++
	}

	var out []TypeCount
	for _, t := range constants.ORDER_TYPES {
		if counts[t] > 0 {
			out = append(out, TypeCount{Type: t, Label: constants.ORDER_TYPE_LABELS[t], Count: counts[t]})
		}
	}
	return out
}

func RevenueTotal(orders []model.Order) int64 {
	var total int64
	for _, o := range orders {
		total += o.Total
	}
	return total
}

// RevenueChangePercent compares the current window against the previous one.
// Returns nil when the previous total is zero: there is no comparison, which
// is not the same thing as 0%.
func RevenueChangePercent(current, previous int64) *int {
	if previous <= 0 {
		return nil
	}
	pct := int(math.Round(float64(current-previous) / float64(previous) * 100))
	return &pct
}
