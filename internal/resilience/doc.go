// Package resilience holds the fault tolerance helpers used around URL
// document acquisition.
//
//   - circuitbreaker stops calling a failing source and reports its state
//   - retry repeats transient failures with exponential backoff and jitter
//
// Usage:
//
//	cb := circuitbreaker.New(circuitbreaker.SourceFetchConfig())
//	body, err := circuitbreaker.Run(cb, func() (string, error) {
//	    return retry.Do(ctx, retry.SourceFetchConfig(), download)
//	})
package resilience
