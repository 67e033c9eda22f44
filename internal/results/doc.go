// Package results flattens a grouped result set (files and their matches)
// into one linear sequence of header and item rows, tracks a cursor that only
// ever rests on item rows, and resolves the cursor back to the originating
// group and item.
//
// A List is owned by a single goroutine. Producers that discover groups
// concurrently hand them to the owner, which appends them between navigation
// calls.
package results
