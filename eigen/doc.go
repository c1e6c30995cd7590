// Package eigen post-processes raw eigenpairs from an external
// generalized eigensolver into the canonical form the rest of the
// pipeline consumes.
//
// Canonical eigenvalue matrix:
//
//	A *mat.CDense of shape (size+1, size). Rows 0..size-1 hold the
//	eigenvector components, row size holds the eigenvalues; column i is
//	one eigenmode. The column pairing between eigenvector and
//	eigenvalue is the load-bearing invariant: it survives sorting and
//	screening unchanged.
//
// Operations:
//
//   - Sort: permute modes into ascending order keyed lexicographically
//     by (Re λ, Im λ); full ties keep their input order (stable).
//     Pure — allocates the canonical matrix, never touches its inputs.
//   - Screen: overwrite every invalid mode (validity mask false) with a
//     NaN sentinel — the whole matrix column and the matching entry of
//     each parallel physical-quantity slice. Shapes never change, so
//     downstream stages can keep indexing by mode. Mutates in place
//     after validation; a ShapeMismatch failure leaves every input
//     untouched.
//
// Errors:
//
//   - ErrNilMatrix: nil matrix where a canonical or square matrix is
//     required.
//   - ErrShapeMismatch: row/column/length disagreement between the
//     matrix, the validity mask and the quantity slices. Fatal at the
//     point of detection; nothing is partially screened.
//
// Invalid modes are sentinel-NaN'd rather than removed deliberately:
// stable array shapes across this stage boundary are what downstream
// analysis relies on.
package eigen
