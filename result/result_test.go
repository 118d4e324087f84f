package result

import (
	"testing"
	"time"
)

func TestStatus(t *testing.T) {
	ok := HTTPStatus(200)
	if !ok.OK() {
		t.Error("HTTPStatus(200).OK() = false, want true")
	}
	if ok.IsFailure() {
		t.Error("HTTPStatus(200).IsFailure() = true, want false")
	}
	if code, present := ok.Code(); !present || code != 200 {
		t.Errorf("HTTPStatus(200).Code() = %d, %v; want 200, true", code, present)
	}
	if got := ok.String(); got != "200" {
		t.Errorf("HTTPStatus(200).String() = %q, want %q", got, "200")
	}

	notFound := HTTPStatus(404)
	if notFound.OK() {
		t.Error("HTTPStatus(404).OK() = true, want false")
	}
	if got := notFound.String(); got != "404" {
		t.Errorf("HTTPStatus(404).String() = %q, want %q", got, "404")
	}

	failed := RequestFailed()
	if !failed.IsFailure() {
		t.Error("RequestFailed().IsFailure() = false, want true")
	}
	if failed.OK() {
		t.Error("RequestFailed().OK() = true, want false")
	}
	if _, present := failed.Code(); present {
		t.Error("RequestFailed().Code() reports a code, want none")
	}
	if got := failed.String(); got != "ERR" {
		t.Errorf("RequestFailed().String() = %q, want %q", got, "ERR")
	}
}

func TestFindingLine(t *testing.T) {
	tests := []struct {
		name    string
		finding Finding
		want    string
	}{
		{
			name: "timed finding includes response time",
			finding: Finding{
				Status:  HTTPStatus(404),
				Page:    "https://example.com/",
				Link:    "https://example.com/missing.png",
				Elapsed: 1230 * time.Millisecond,
				Timed:   true,
			},
			want: "404 https://example.com/ -> https://example.com/missing.png (1.23s)",
		},
		{
			name: "failed finding has no time suffix",
			finding: Finding{
				Status: RequestFailed(),
				Page:   "https://example.com/",
				Link:   "https://gone.invalid/resource",
			},
			want: "ERR https://example.com/ -> https://gone.invalid/resource",
		},
		{
			name: "slow 200 response",
			finding: Finding{
				Status:  HTTPStatus(200),
				Page:    "https://example.com/about",
				Link:    "https://example.com/big.js",
				Elapsed: 12 * time.Second,
				Timed:   true,
			},
			want: "200 https://example.com/about -> https://example.com/big.js (12.00s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.finding.Line(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		finding Finding
		want    Category
	}{
		{"request failed", Finding{Status: RequestFailed()}, CategoryFailed},
		{"slow 200", Finding{Status: HTTPStatus(200), Elapsed: 11 * time.Second, Timed: true}, CategorySlow},
		{"redirect", Finding{Status: HTTPStatus(301), Timed: true}, CategoryRedirect},
		{"not found", Finding{Status: HTTPStatus(404), Timed: true}, Category4xx},
		{"server error", Finding{Status: HTTPStatus(503), Timed: true}, Category5xx},
		{"informational", Finding{Status: HTTPStatus(101), Timed: true}, CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.finding); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatCategory(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategorySlow, "Slow Responses"},
		{CategoryRedirect, "Unfollowed Redirects (3xx)"},
		{Category4xx, "Client Errors (4xx)"},
		{Category5xx, "Server Errors (5xx)"},
		{CategoryFailed, "Request Failures"},
		{CategoryOther, "Other"},
	}

	for _, tt := range tests {
		t.Run(string(tt.cat), func(t *testing.T) {
			if got := FormatCategory(tt.cat); got != tt.want {
				t.Errorf("FormatCategory(%v) = %q, want %q", tt.cat, got, tt.want)
			}
		})
	}
}
