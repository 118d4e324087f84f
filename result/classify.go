package result

// Category groups findings for summary display.
type Category string

const (
	CategorySlow     Category = "slow"
	CategoryRedirect Category = "redirect"
	Category4xx      Category = "4xx"
	Category5xx      Category = "5xx"
	CategoryFailed   Category = "request_failed"
	CategoryOther    Category = "other"
)

// Classify determines the category of a finding from its status.
// A 200 status can only appear in a finding when the response was slow.
func Classify(f Finding) Category {
	if f.Status.IsFailure() {
		return CategoryFailed
	}

	code, _ := f.Status.Code()
	switch {
	case code == 200:
		return CategorySlow
	case code >= 300 && code <= 399:
		return CategoryRedirect
	case code >= 400 && code <= 499:
		return Category4xx
	case code >= 500:
		return Category5xx
	}
	return CategoryOther
}

// FormatCategory returns a human-readable label for a category.
func FormatCategory(cat Category) string {
	switch cat {
	case CategorySlow:
		return "Slow Responses"
	case CategoryRedirect:
		return "Unfollowed Redirects (3xx)"
	case Category4xx:
		return "Client Errors (4xx)"
	case Category5xx:
		return "Server Errors (5xx)"
	case CategoryFailed:
		return "Request Failures"
	default:
		return "Other"
	}
}
