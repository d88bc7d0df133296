package telemetry

import "testing"

func TestBucketHistory(t *testing.T) {
	history := make([]int, 25)
	for i := range history {
		history[i] = i
	}

	tests := []struct {
		name      string
		size      int
		partial   bool
		wantCount int
		wantLast  [2]int // start, end of last bucket
	}{
		{"full windows only", 10, false, 2, [2]int{10, 20}},
		{"with partial", 10, true, 3, [2]int{20, 25}},
		{"exact multiple", 5, true, 5, [2]int{20, 25}},
		{"window larger than history", 100, false, 0, [2]int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buckets := BucketHistory(history, tc.size, tc.partial)
			if len(buckets) != tc.wantCount {
				t.Fatalf("got %d buckets, want %d", len(buckets), tc.wantCount)
			}
			if tc.wantCount == 0 {
				return
			}
			last := buckets[len(buckets)-1]
			if last.Start != tc.wantLast[0] || last.End != tc.wantLast[1] {
				t.Errorf("last bucket = [%d,%d), want [%d,%d)", last.Start, last.End, tc.wantLast[0], tc.wantLast[1])
			}
			if last.Index != len(buckets)-1 {
				t.Errorf("last index = %d", last.Index)
			}
		})
	}
}

func TestBucketHistorySummaries(t *testing.T) {
	buckets := BucketHistory([]int{1, 2, 3, 10, 20, 30}, 3, false)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets", len(buckets))
	}
	if buckets[0].Mean != 2 || buckets[0].Max != 3 {
		t.Errorf("bucket 0 = %+v", buckets[0])
	}
	if buckets[1].Mean != 20 || buckets[1].Max != 30 || buckets[1].Count != 3 {
		t.Errorf("bucket 1 = %+v", buckets[1])
	}
}

func TestBucketHistoryDefaultWindow(t *testing.T) {
	history := make([]int, DefaultHistoryWindow+1)
	if got := len(BucketHistory(history, 0, false)); got != 1 {
		t.Errorf("got %d buckets with default window, want 1", got)
	}
}
