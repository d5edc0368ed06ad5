// Package sitekit is the data-access layer for the Brotech
// WebSolutions site: live, auto-updating views over the remote
// document store's content collections, fire-and-forget form
// submissions, and the admin console's inbox feeds.
//
// A Client wraps one process-wide store connection. Typed accessors
// return Feed values whose data falls back to compiled-in tables when
// the live collection is empty, so pages never render blank even when
// the store is empty or unreachable. Write operations never retry and
// never partially write.
package sitekit
