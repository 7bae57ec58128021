package domain

import "testing"

func TestCTR(t *testing.T) {
	tests := []struct {
		name        string
		impressions int64
		clicks      int64
		want        string
	}{
		{"typical", 10000, 250, "2.50"},
		{"zero impressions", 0, 10, "0.00"},
		{"zero clicks", 5000, 0, "0.00"},
		{"rounds down", 3000, 100, "3.33"},
		{"rounds up", 3000, 200, "6.67"},
		{"over one hundred", 100, 150, "150.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Campaign{Impressions: tt.impressions, Clicks: tt.clicks}
			if got := c.CTR(); got != tt.want {
				t.Fatalf("CTR() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActive(t *testing.T) {
	if !(Campaign{Status: StatusActive}).Active() {
		t.Fatal("active campaign reported inactive")
	}
	if (Campaign{Status: StatusPaused}).Active() || (Campaign{Status: StatusExpired}).Active() {
		t.Fatal("non-active campaign reported active")
	}
}
