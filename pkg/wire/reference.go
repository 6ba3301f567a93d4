package wire

import "strings"

// Reference is a full Firestore resource name, e.g.
// "projects/my-proj/databases/(default)/documents/cities/LA".
//
// The string is stored verbatim and never validated up front. Every accessor
// re-parses it on demand, so a malformed string is accepted silently at
// construction and only surfaces as a MalformedReferenceError once a component
// of it is asked for. Reference is an immutable value type and safe to copy.
type Reference struct {
	raw string
}

// NewReference wraps a raw resource name. It never fails; validation is
// deferred to the accessors.
func NewReference(raw string) Reference {
	return Reference{raw: raw}
}

// NewDocumentReference assembles a resource name from its parts. The document
// path is the slash-separated collection/id tail, e.g. "cities/LA".
func NewDocumentReference(projectID, databaseID, documentPath string) Reference {
	return Reference{raw: "projects/" + projectID + "/databases/" + databaseID + "/documents/" + documentPath}
}

// Raw returns the stored resource name unchanged, valid or not.
func (r Reference) Raw() string {
	return r.raw
}

// String implements fmt.Stringer.
func (r Reference) String() string {
	return r.raw
}

// parse splits the raw string against the fixed grammar: the literals
// "projects", "databases" and "documents" at segments 0, 2 and 4, the ids at
// 1 and 3, and everything from segment 5 on as the document path. Anything
// else is malformed. The match is anchored, partial prefixes do not pass.
func (r Reference) parse() (projectID string, databaseID string, documentPath string, err error) {
	segments := strings.Split(r.raw, "/")
	if len(segments) < 6 || segments[0] != "projects" || segments[2] != "databases" || segments[4] != "documents" {
		return "", "", "", &MalformedReferenceError{Ref: r.raw}
	}

	projectID = segments[1]
	databaseID = segments[3]
	documentPath = strings.Join(segments[5:], "/")

	if projectID == "" || databaseID == "" || documentPath == "" {
		return "", "", "", &MalformedReferenceError{Ref: r.raw}
	}

	return projectID, databaseID, documentPath, nil
}

// ProjectID returns the project id segment.
func (r Reference) ProjectID() (string, error) {
	projectID, _, _, err := r.parse()
	return projectID, err
}

// DatabaseID returns the database id segment. "(default)" is an ordinary id
// here, not a special case.
func (r Reference) DatabaseID() (string, error) {
	_, databaseID, _, err := r.parse()
	return databaseID, err
}

// Path returns the document path, everything after ".../documents/". By
// convention the path alternates collection and document ids; the grammar
// itself does not enforce that, so odd-length paths pass through unchanged.
func (r Reference) Path() (string, error) {
	_, _, documentPath, err := r.parse()
	return documentPath, err
}

// ID returns the last segment of the document path, the document's own id.
func (r Reference) ID() (string, error) {
	_, _, documentPath, err := r.parse()
	if err != nil {
		return "", err
	}
	segments := strings.Split(documentPath, "/")
	return segments[len(segments)-1], nil
}

// CollectionPath returns the document path with its last segment removed,
// i.e. the path of the collection holding the document. For a document sitting
// directly under a root collection this is just the collection id.
func (r Reference) CollectionPath() (string, error) {
	_, _, documentPath, err := r.parse()
	if err != nil {
		return "", err
	}
	segments := strings.Split(documentPath, "/")
	return strings.Join(segments[:len(segments)-1], "/"), nil
}
