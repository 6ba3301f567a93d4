package wire

// Document is the wire shape of a stored document. Name, CreateTime and
// UpdateTime are assigned by the server and empty on documents that were
// never written. Timestamps stay RFC 3339 text, same as the timestamp value
// variant.
type Document struct {
	Name       string    `json:"name,omitempty"`
	Fields     *FieldMap `json:"fields,omitempty"`
	CreateTime string    `json:"createTime,omitempty"`
	UpdateTime string    `json:"updateTime,omitempty"`
}

// Ref wraps the document's resource name as a Reference. Like any Reference
// it is unvalidated until an accessor is called, so Ref on a nameless
// document succeeds and the accessors fail.
func (d Document) Ref() Reference {
	return NewReference(d.Name)
}

// UpdateMask lists the field paths touched by an update, dot-separated for
// nested fields.
type UpdateMask struct {
	FieldPaths []string `json:"fieldPaths,omitempty"`
}

// Event is the envelope of a Firestore trigger event. OldValue is zero for
// creates, Value is zero for deletes, and UpdateMask is only populated on
// updates.
type Event struct {
	OldValue   Document   `json:"oldValue"`
	Value      Document   `json:"value"`
	UpdateMask UpdateMask `json:"updateMask"`
}

// ListDocumentsResponse is the page shape returned by document listing.
type ListDocumentsResponse struct {
	Documents     []Document `json:"documents,omitempty"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}
