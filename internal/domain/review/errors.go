package review

import "errors"

var (
	// ErrClientReference is returned when a review targets a client that
	// does not exist (store foreign key violation).
	ErrClientReference = errors.New("referenced client does not exist")

	// ErrCommentRequired is returned when the review text is blank.
	ErrCommentRequired = errors.New("review text must not be blank")
)
