package funds

import (
	"regexp"
	"testing"
)

func fptr(v float64) *float64 { return &v }

func TestFormatFee(t *testing.T) {
	feePattern := regexp.MustCompile(`^\d+\.\d{2}%$`)

	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{name: "typical", in: fptr(0.2), want: "0.20%"},
		{name: "rounds to two decimals", in: fptr(0.126), want: "0.13%"},
		{name: "zero is a real fee", in: fptr(0), want: "0.00%"},
		{name: "absent", in: nil, want: NA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatFee(tt.in)
			if got != tt.want {
				t.Errorf("FormatFee() = %q, want %q", got, tt.want)
			}
			if tt.in != nil && !feePattern.MatchString(got) {
				t.Errorf("FormatFee() = %q, want match for %s", got, feePattern)
			}
		})
	}
}

func TestFormatReturn(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{name: "positive carries a sign", in: fptr(18.4), want: "+18%"},
		{name: "zero carries a sign", in: fptr(0), want: "+0%"},
		{name: "negative", in: fptr(-4.2), want: "-4%"},
		{name: "rounds to whole percent", in: fptr(11.5), want: "+12%"},
		{name: "absent", in: nil, want: NA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatReturn(tt.in); got != tt.want {
				t.Errorf("FormatReturn() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRiskFromRating(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want Risk
	}{
		{name: "one", in: fptr(1), want: RiskLow},
		{name: "boundary two", in: fptr(2), want: RiskLow},
		{name: "boundary three", in: fptr(3), want: RiskMedium},
		{name: "boundary four", in: fptr(4), want: RiskMedium},
		{name: "boundary five", in: fptr(5), want: RiskHigh},
		{name: "seven", in: fptr(7), want: RiskHigh},
		{name: "fraction truncates", in: fptr(2.9), want: RiskLow},
		{name: "absent defaults to medium", in: nil, want: RiskMedium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RiskFromRating(tt.in); got != tt.want {
				t.Errorf("RiskFromRating() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsInstitutional(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "Avanza Global", want: false},
		{name: "Vanguard Global Stock Index Inst", want: true},
		{name: "Blackrock World Index Fund INSTITUTIONAL", want: true},
		{name: "Acme Index Class I", want: true},
		{name: "Acme Sverige Index Klass Z", want: true},
		{name: "AP7 Tjänstepension Index", want: true},
		{name: "Handelsbanken Global Index Criteria", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInstitutional(tt.name); got != tt.want {
				t.Errorf("IsInstitutional(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
