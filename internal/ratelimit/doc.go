// Package ratelimit limits how many requests a client may make within a
// window. Two backends implement Limiter: an in-process token bucket per
// client for single instances, and a Redis fixed window shared by every
// instance behind a load balancer.
package ratelimit
