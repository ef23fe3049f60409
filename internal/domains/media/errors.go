package media

import "errors"

// Store-level errors
var (
	ErrMediaNotFound   = errors.New("media not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// Validation errors
var (
	ErrTitleRequired = errors.New("title is required")
	ErrEmptyComment  = errors.New("comment content cannot be blank")
	ErrInvalidType   = errors.New("media type must be image or video")
)

// Upstream errors
var (
	ErrUpstreamFailure = errors.New("content backend request failed")
)
