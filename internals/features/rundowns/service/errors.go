// file: internals/features/rundowns/service/errors.go
package service

import "errors"

// Engine error taxonomy. Controllers map these onto HTTP statuses and stable
// error codes; none of them is fatal. Anything else bubbling out of a service
// call is a store failure and surfaces as a 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrShareRequiresClass = errors.New("share_with_class requires an owning class")
	ErrPinnedSegment      = errors.New("pinned segments cannot be deleted")
	ErrTalentLimit        = errors.New("talent limit reached for this rundown")
	ErrDuplicateTalent    = errors.New("talent name already exists in this rundown")
	ErrDuplicateStory     = errors.New("story is already attached to this rundown")
	ErrInvalidReorderSet  = errors.New("supplied IDs do not match the current siblings")
)
