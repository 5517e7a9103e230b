// Package fulfillment models requests sent to the upstream fulfillment endpoint
// and the ways that endpoint can answer.
//
// A Request is built fresh for every attempt and tagged with the Strategy that
// shaped it. Upstream refusals arrive as *RejectedError carrying a RejectionClass,
// which the pickup flow uses to pick the next step.
package fulfillment
