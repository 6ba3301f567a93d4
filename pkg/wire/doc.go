// Package wire models Firestore's wire-level data: the resource name grammar
// of document references and the recursive tagged value union shared by the
// REST encoding and trigger events, plus the inert document, query and
// connection-config shapes that travel alongside them.
//
// The package does no I/O. It exists so that functions consuming raw
// Firestore payloads (trigger events, REST responses, exports) can decode,
// inspect and re-encode them without pulling in a client, and so that the
// strict parts of the format (one wrapper key per value node, the anchored
// reference grammar) are enforced in exactly one place.
package wire
