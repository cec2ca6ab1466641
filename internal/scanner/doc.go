// Package scanner finds literal occurrences of a search term inside a single file.
//
// Two independent passes are provided. ScanLines reads the file line by line
// and reports each matching line with its 1-indexed line number. SearchJSON
// walks an order-preserving JSON tree produced by ParseJSON and reports
// matching keys and values with their structural path ($.users[2].name).
// Callers concatenate the two result lists; they are not deduplicated.
package scanner
