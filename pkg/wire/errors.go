package wire

import (
	"errors"
	"fmt"

	rpccode "google.golang.org/genproto/googleapis/rpc/code"
)

//ErrMalformedReference Sentinel for errors.Is checks against reference parse failures.
var ErrMalformedReference = errors.New("malformed reference")

//MalformedReferenceError Returned by Reference accessors when the stored string does not
//match "projects/{project}/databases/{database}/documents/{path}". The failure is a property
//of the string itself, so retrying the accessor can never succeed.
type MalformedReferenceError struct {
	Ref string
}

//Error Returns error message.
func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("malformed reference %q", e.Ref)
}

//Is Matches the ErrMalformedReference sentinel.
func (e *MalformedReferenceError) Is(target error) bool {
	return target == ErrMalformedReference
}

//Code Returns rpc code of the error.
func (e *MalformedReferenceError) Code() rpccode.Code {
	return rpccode.Code_INVALID_ARGUMENT
}

//InvalidValueError Returned by the value codec when a JSON node is not a legal wire value:
//no recognized wrapper key, more than one, an unknown wrapper, or a payload of the wrong shape.
type InvalidValueError struct {
	Reason string
}

//Error Returns error message.
func (e *InvalidValueError) Error() string {
	return "invalid value: " + e.Reason
}

//Code Returns rpc code of the error.
func (e *InvalidValueError) Code() rpccode.Code {
	return rpccode.Code_INVALID_ARGUMENT
}
