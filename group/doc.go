// Package group assigns every author a group number: the weighted distance
// to the nearest of a set of seed authors.
//
// LabelByNearestSeed runs one full shortest-path search per seed, in
// parallel on an errgroup, and folds the results with an element-wise
// minimum. Unknown seeds are skipped with a warning rather than failing the
// whole run. Authors no seed can reach keep +Inf, which Labels.MarshalJSON
// writes as null.
package group
