// Package tengok scans a directory subtree and aggregates file statistics.
//
// It walks the tree using fastwalk for parallel traversal, honoring
// .gitignore rules, counts lines for text files, and folds the per-file
// records into a single Summary on one consuming goroutine.
package tengok
