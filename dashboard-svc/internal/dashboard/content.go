package dashboard

var seoTips = []string{
	"Use keywords relevant to your business in your headlines.",
	"Keep your headlines concise and engaging.",
	"Include your location to improve local SEO.",
	"Update your SEO headlines regularly to stay relevant.",
	"Encourage customers to leave reviews to boost your rating.",
}

func SEOTips() []string {
	return append([]string(nil), seoTips...)
}

// Chart is the bar chart configuration handed to Chart.js.
type Chart struct {
	Title  string   `json:"title"`
	Label  string   `json:"label"`
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// ReviewTrend charts five fixed months followed by the current review count.
func ReviewTrend(reviews int) Chart {
	return Chart{
		Title:  "Review Trend (Last 6 Months)",
		Label:  "Number of Reviews",
		Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
		Data:   []int{12, 19, 14, 20, 25, reviews},
	}
}
