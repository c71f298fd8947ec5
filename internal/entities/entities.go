package entities

import "errors"

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrBranchNotFound = errors.New("branch not found")
	ErrNoBranchInfo   = errors.New("no branch info for order")

	// ErrAttachmentNotFound is returned by media lookups that match no stored file.
	ErrAttachmentNotFound = errors.New("attachment not found")
	// ErrUnresolvedAttachment marks a configured attachment URL that could not be
	// turned into a local file path.
	ErrUnresolvedAttachment = errors.New("unresolved attachment")

	ErrMissingBranch     = errors.New("missing branch")
	ErrPlaceholderBranch = errors.New("placeholder branch")
)
