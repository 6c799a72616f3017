// Package pg provides the postgres connection pool, startup retries and
// embedded goose migrations shared by the pgx-backed stores.
package pg
