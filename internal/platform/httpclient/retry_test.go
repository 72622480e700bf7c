package httpclient

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestRetryPolicy_Delay(t *testing.T) {
	t.Parallel()

	p := retryPolicy{attempts: 5, initial: 100 * time.Millisecond, ceiling: time.Second, factor: 2}

	tests := []struct {
		retry   int
		nominal time.Duration
	}{
		{retry: 1, nominal: 100 * time.Millisecond},
		{retry: 2, nominal: 200 * time.Millisecond},
		{retry: 3, nominal: 400 * time.Millisecond},
		{retry: 6, nominal: time.Second},
	}

	for _, tt := range tests {
		lo := time.Duration(float64(tt.nominal) * (1 - jitter))
		hi := time.Duration(float64(tt.nominal) * (1 + jitter))
		for range 20 {
			if got := p.delay(tt.retry); got < lo || got > hi {
				t.Fatalf("delay(%d) = %v, want within [%v, %v]", tt.retry, got, lo, hi)
			}
		}
	}
}

func TestRetryable(t *testing.T) {
	t.Parallel()

	errTests := []struct {
		err  error
		want bool
	}{
		{err: nil, want: false},
		{err: context.Canceled, want: false},
		{err: context.DeadlineExceeded, want: false},
		{err: errors.New("connection reset by peer"), want: true},
	}
	for _, tt := range errTests {
		if got := retryableErr(tt.err); got != tt.want {
			t.Errorf("retryableErr(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}

	statusTests := map[int]bool{
		http.StatusOK:                  false,
		http.StatusBadRequest:          false,
		http.StatusNotFound:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusGatewayTimeout:      true,
	}
	for code, want := range statusTests {
		if got := retryableStatus(code); got != want {
			t.Errorf("retryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}
