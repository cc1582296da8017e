// Package dtb decodes flattened devicetree blobs (DTB files) into an
// in-memory tree of named nodes carrying raw byte-string properties.
//
// The pipeline has three stages. Open or FromBytes validates the fixed
// header. Tokens materializes the structure block into an ordered token
// sequence via the lazy Scanner. Decode then runs two independent passes
// over that sequence: BuildSymbols inverts the reserved /__symbols__ node
// into a path-to-alias table, and the tree builder assembles the rooted
// Node tree, attaching alias names and properties.
//
// All decode errors are fatal: malformed input aborts the whole decode
// with no partial result. Errors wrap the package sentinels
// (ErrMalformedHeader, ErrInvalidNodeName, ErrUnbalancedNesting,
// ErrPropertyOutsideNode, ErrTruncated, ErrUnknownToken) and carry the
// byte offset where the violation was detected.
//
// Decoding is single-threaded and allocates everything per call; decodes
// of different blobs may run concurrently without synchronization.
//
// Rendering property values for display lives in the render subpackage,
// and printers for whole trees in the printer subpackage.
package dtb
