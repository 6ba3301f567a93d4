package wire

import "math/rand"

const (
	autoIDLength   = 20
	autoIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

//NewDocumentID Generates a document auto-id, 20 characters of [A-Za-z0-9],
//the same shape the server assigns on document creation. The top-level rand
//source is locked, so concurrent calls are fine.
func NewDocumentID() string {
	id := make([]byte, autoIDLength)
	for i := range id {
		id[i] = autoIDAlphabet[rand.Intn(len(autoIDAlphabet))]
	}
	return string(id)
}
