package analytics

import (
	"sort"
	"strconv"
	"time"

	"github.com/luay-ju/formilon-project/internal/model"
)

const (
	mostUsedLimit    = 10
	defaultMaxRating = 5
	dayFormat        = "2006-01-02"
)

// dateLayouts are tried in order when parsing date answers. Clients send
// either a bare date or a full timestamp.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// counter accumulates value frequencies while remembering first-seen
// order. Map iteration alone would make mostUsed ties nondeterministic,
// so ties are broken by the order values first appeared in the input.
type counter struct {
	freq  map[string]int
	order []string
}

func newCounter() *counter {
	return &counter{freq: map[string]int{}}
}

func (c *counter) add(v string) {
	if _, seen := c.freq[v]; !seen {
		c.order = append(c.order, v)
	}
	c.freq[v]++
}

func (c *counter) total() int {
	n := 0
	for _, count := range c.freq {
		n += count
	}
	return n
}

// mostUsed returns the top entries by descending count, ties broken by
// first-seen order.
func (c *counter) mostUsed(limit int) []TextCount {
	entries := make([]TextCount, 0, len(c.order))
	for _, v := range c.order {
		entries = append(entries, TextCount{Text: v, Count: c.freq[v]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func (c *counter) percentages(total int) map[string]float64 {
	out := make(map[string]float64, len(c.freq))
	if total == 0 {
		return out
	}
	for v, count := range c.freq {
		out[v] = float64(count) / float64(total) * 100
	}
	return out
}

// aggregateText groups identical strings verbatim: case-sensitive, no
// trimming.
func aggregateText(values []string) TextAnalysis {
	c := newCounter()
	for _, v := range values {
		c.add(v)
	}
	total := c.total()
	return TextAnalysis{
		TotalResponses: total,
		Frequencies:    c.freq,
		Percentages:    c.percentages(total),
		MostUsed:       c.mostUsed(mostUsedLimit),
	}
}

// aggregateCategorical is the text algorithm over option values
func aggregateCategorical(values []string) CategoricalAnalysis {
	c := newCounter()
	for _, v := range values {
		c.add(v)
	}
	total := c.total()
	mostUsed := make([]CategoryCount, 0, mostUsedLimit)
	for _, e := range c.mostUsed(mostUsedLimit) {
		mostUsed = append(mostUsed, CategoryCount{Category: e.Text, Count: e.Count})
	}
	return CategoricalAnalysis{
		TotalResponses: total,
		Frequencies:    c.freq,
		Percentages:    c.percentages(total),
		MostUsed:       mostUsed,
	}
}

// aggregateNumeric handles number and linear_scale answers. Values that
// don't parse as numbers are dropped: they contribute to neither the
// total nor the sum. Frequencies stay keyed by the literal numeric
// string; SortedValues re-orders the same entries ascending by value.
func aggregateNumeric(values []string) NumericAnalysis {
	c := newCounter()
	sum := 0.0
	for _, v := range values {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		c.add(v)
		sum += n
	}
	total := c.total()

	average := 0.0
	if total > 0 {
		average = sum / float64(total)
	}

	points := make([]ScalePoint, 0, len(c.order))
	for _, v := range c.order {
		// keys only enter the counter after a successful parse
		n, _ := strconv.ParseFloat(v, 64)
		points = append(points, ScalePoint{Value: n, Count: c.freq[v]})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Value < points[j].Value
	})

	return NumericAnalysis{
		TotalResponses: total,
		Frequencies:    c.freq,
		Percentages:    c.percentages(total),
		MostUsed:       c.mostUsed(mostUsedLimit),
		Average:        average,
		SortedValues:   points,
	}
}

// aggregateDate groups answers by calendar day. Unparseable dates are
// dropped; valid ones are normalized to YYYY-MM-DD in UTC, discarding
// time of day.
func aggregateDate(values []string) DateAnalysis {
	c := newCounter()
	for _, v := range values {
		t, ok := parseDate(v)
		if !ok {
			continue
		}
		c.add(t.UTC().Format(dayFormat))
	}
	total := c.total()
	return DateAnalysis{
		TotalResponses: total,
		Frequencies:    c.freq,
		Percentages:    c.percentages(total),
		MostUsed:       c.mostUsed(mostUsedLimit),
	}
}

func parseDate(v string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// aggregateEmoji resolves option ids to their emoji glyph before
// grouping. Values not found in the option map pass through unchanged,
// treated as literal emoji.
func aggregateEmoji(values []string, options []model.Option) EmojiAnalysis {
	glyphs := make(map[string]string, len(options))
	for _, opt := range options {
		glyphs[opt.ID] = opt.Emoji
	}

	c := newCounter()
	for _, v := range values {
		if emoji, ok := glyphs[v]; ok {
			v = emoji
		}
		c.add(v)
	}
	total := c.total()
	mostUsed := make([]EmojiCount, 0, mostUsedLimit)
	for _, e := range c.mostUsed(mostUsedLimit) {
		mostUsed = append(mostUsed, EmojiCount{Emoji: e.Text, Count: e.Count})
	}
	return EmojiAnalysis{
		TotalResponses: total,
		Frequencies:    c.freq,
		Percentages:    c.percentages(total),
		MostUsed:       mostUsed,
	}
}

// aggregateRating parses ratings and discards anything outside
// [0, maxRating]. Bounds checking lives here, not in the renderers.
func aggregateRating(values []string, maxRating int) RatingAnalysis {
	if maxRating <= 0 {
		maxRating = defaultMaxRating
	}

	c := newCounter()
	sum := 0.0
	for _, v := range values {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n < 0 || n > float64(maxRating) {
			continue
		}
		c.add(v)
		sum += n
	}
	total := c.total()

	average := 0.0
	if total > 0 {
		average = sum / float64(total)
	}

	mostUsed := make([]RatingCount, 0, mostUsedLimit)
	for _, e := range c.mostUsed(mostUsedLimit) {
		n, _ := strconv.ParseFloat(e.Text, 64)
		mostUsed = append(mostUsed, RatingCount{Rating: int(n), Count: e.Count})
	}
	return RatingAnalysis{
		TotalResponses: total,
		Frequencies:    c.freq,
		Percentages:    c.percentages(total),
		MostUsed:       mostUsed,
		Average:        average,
	}
}
