// Package advisor emits ranked upgrade prompts from quota utilization and
// trial state. Pure reads, fixed thresholds, no side effects.
package advisor
