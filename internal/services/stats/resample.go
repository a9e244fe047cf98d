package stats

import (
	"sort"
	"time"

	"VolScan/internal/domain/models"
	"VolScan/pkg/util"
)

// intradayGapLimit is the granularity cutoff: a median gap below this means
// the bars are intraday and need resampling to trading days.
const intradayGapLimit = 60 * time.Minute

// IsIntraday reports whether bars look finer than daily granularity.
func IsIntraday(bars []models.Bar) bool {
	if len(bars) < 2 {
		return false
	}
	ts := make([]time.Time, len(bars))
	for i, b := range bars {
		ts[i] = b.Time
	}
	gap := util.MedianGap(ts)
	return gap > 0 && gap < intradayGapLimit
}

// ToDaily buckets intraday bars into trading days in the exchange location:
// open = first, high = max, low = min, close = last, volume = sum. Days with
// no bars do not appear. Input order is preserved inside each day.
func ToDaily(bars []models.Bar, loc *time.Location) models.DailySeries {
	if len(bars) == 0 {
		return nil
	}

	type bucket struct {
		day models.DailyBar
		set bool
	}
	buckets := make(map[time.Time]*bucket)
	order := make([]time.Time, 0)

	for _, b := range bars {
		date := util.TradingDate(b.Time, loc)
		bk, ok := buckets[date]
		if !ok {
			bk = &bucket{}
			buckets[date] = bk
			order = append(order, date)
		}
		if !bk.set {
			bk.day = models.DailyBar{
				Date:   date,
				Open:   b.Open,
				High:   b.High,
				Low:    b.Low,
				Close:  b.Close,
				Volume: b.Volume,
			}
			bk.set = true
			continue
		}
		if b.High > bk.day.High {
			bk.day.High = b.High
		}
		if b.Low < bk.day.Low {
			bk.day.Low = b.Low
		}
		bk.day.Close = b.Close
		bk.day.Volume += b.Volume
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	out := make(models.DailySeries, 0, len(order))
	for _, date := range order {
		out = append(out, buckets[date].day)
	}
	return out
}

// Normalize converts raw provider bars into a daily series: intraday input
// is resampled, daily input passes through with date normalization.
func Normalize(bars []models.Bar, loc *time.Location) models.DailySeries {
	if len(bars) == 0 {
		return nil
	}
	if IsIntraday(bars) {
		return ToDaily(bars, loc)
	}
	out := make(models.DailySeries, 0, len(bars))
	for _, b := range bars {
		out = append(out, models.DailyBar{
			Date:   util.TradingDate(b.Time, loc),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
