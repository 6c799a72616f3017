// Package team authorizes management operations between members of one
// agency. The role hierarchy is a strict order, owner over super-agent over
// agent: a member manages only members of strictly lower rank, never peers.
// The sole exception is the last-owner rule, which blocks removing or
// demoting an agency's only owner no matter who asks.
package team
