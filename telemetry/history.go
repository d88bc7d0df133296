package telemetry

// DefaultHistoryWindow is the number of history entries per bucket.
const DefaultHistoryWindow = 10_000

// HistoryBucket summarizes one fixed-size window of the death history.
type HistoryBucket struct {
	Index int     `csv:"bucket" parquet:"bucket"`
	Start int     `csv:"start" parquet:"start"` // First history index, inclusive
	End   int     `csv:"end" parquet:"end"`     // Last history index, exclusive
	Count int     `csv:"count" parquet:"count"`
	Mean  float64 `csv:"mean" parquet:"mean"`
	Std   float64 `csv:"std" parquet:"std"`
	P50   float64 `csv:"p50" parquet:"p50"`
	P90   float64 `csv:"p90" parquet:"p90"`
	Max   float64 `csv:"max" parquet:"max"`
}

// BucketHistory splits history into consecutive windows of size entries
// and summarizes each. A trailing partial window is dropped unless
// includePartial is set.
func BucketHistory(history []int, size int, includePartial bool) []HistoryBucket {
	if size <= 0 {
		size = DefaultHistoryWindow
	}

	n := len(history) / size
	if includePartial && len(history)%size != 0 {
		n++
	}

	buckets := make([]HistoryBucket, 0, n)
	for i := 0; i < n; i++ {
		start := i * size
		end := min(start+size, len(history))
		s := SummarizeInts(history[start:end])
		buckets = append(buckets, HistoryBucket{
			Index: i,
			Start: start,
			End:   end,
			Count: s.Count,
			Mean:  s.Mean,
			Std:   s.Std,
			P50:   s.P50,
			P90:   s.P90,
			Max:   s.Max,
		})
	}
	return buckets
}
