// Package resilience groups the fault-tolerance building blocks used for
// outbound calls: circuit breakers (circuitbreaker) and retry with
// exponential backoff (retry). The summarization providers and the URL
// content fetcher wrap every external call with both.
package resilience
