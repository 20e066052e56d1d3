// Package coord provides the coordinate ("triplet") side of sparsela: the
// MatrixData exchange representation every format reads from and writes to,
// and a COO matrix that applies directly off the triplet arrays.
//
// MatrixData is the neutral interchange value: an (rows, cols) shape plus a
// list of (row, column, value) entries. The exchange format itself imposes
// no ordering; formats normalize to row-major order on ingestion and, within
// a row, preserve the insertion order of the entry list.
//
// The COO Matrix keeps the three parallel arrays as-is and is mostly useful
// as a conversion partner and as the irregular half of a hybrid format; its
// SpMV walks entries in storage order and scatters into the output.
package coord
