package stats

// Fixed breakdown bands. Labels are emitted in ascending numeric order no
// matter what order games arrive in.
var (
	rankBucketLabels = []string{
		"1-50", "51-100", "101-150", "151-200", "201-250",
		"251-300", "301-350", "351-400", "401-450", "451-500", "501+",
	}
	durationBucketLabels = []string{"0-10m", "10-20m", "20-30m", "30-40m", "40m+"}
)

// rankBucketIndex maps a positive ladder rank into rankBucketLabels.
func rankBucketIndex(rank int) int {
	idx := (rank - 1) / 50
	if idx >= len(rankBucketLabels) {
		idx = len(rankBucketLabels) - 1
	}
	return idx
}

// durationBucketIndex maps a duration in seconds into durationBucketLabels.
func durationBucketIndex(seconds int) int {
	idx := seconds / 600
	if idx >= len(durationBucketLabels) {
		idx = len(durationBucketLabels) - 1
	}
	return idx
}

// buckets accumulates wins/games over a fixed ordered band set.
type buckets struct {
	labels []string
	data   []AggregatedStat
}

func newBuckets(labels []string) *buckets {
	return &buckets{labels: labels, data: make([]AggregatedStat, len(labels))}
}

func (b *buckets) add(idx int, won bool) {
	row := &b.data[idx]
	row.Games++
	if won {
		row.Victories++
	}
	row.WinRate = VictoryRatio(row.Victories, row.Games)
}

// rows returns every band in ascending order, empty bands included.
func (b *buckets) rows() []BucketStat {
	out := make([]BucketStat, len(b.labels))
	for i, label := range b.labels {
		out[i] = BucketStat{Bucket: label, AggregatedStat: b.data[i]}
	}
	return out
}
