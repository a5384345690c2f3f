// Package resilience groups the fault tolerance helpers used for outbound calls.
//
// The media lookup client combines both of them, retries inside the breaker:
//
//	cb := circuitbreaker.New(circuitbreaker.MediaLookupConfig())
//	files, err := circuitbreaker.Do(cb, func() ([]entity.FileInfo, error) {
//	    return retry.Do(ctx, retry.MediaLookupConfig(), fetch)
//	})
package resilience
