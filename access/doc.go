// Package access answers the two file questions the session asks before
// handing a path to gnuplot: does the file exist, and may we use it in the
// requested mode.
//
// Modes follow access(2): 0 checks existence, 1 execute, 2 write, 4 read,
// and sums of those (6 read+write, 7 read+write+execute).
package access
