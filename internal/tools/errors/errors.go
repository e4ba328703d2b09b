package errors

import goErrors "errors"

const (
	BAD_BODY                = "invalid request body"
	INTERNAL_SERVER_ERROR   = "internal server error"
	NOT_FOUND_CATEGORY      = "Can't find category by id: "
	NOT_FOUND_USER_BY_ID    = "Can't find user by id: "
	NOT_FOUND_POST_AUTHOR   = "Can't find post author by id: "
	NOT_FOUND_THREAD        = "Can't find thread by id: "
	NO_POST                 = "Can't find post by id: "
	NO_PARENT_POST          = "Parent post was created in another thread"
	BROKEN_THREAD           = "Thread contains replies to missing posts: "
	UNKNOWN_SORT_TYPE       = "unknown sort type: "
	SHORT_SEARCH_QUERY      = "search query is too short, minimum length: "
	INVALID_PAGE            = "page and limit must be positive"
	UNKNOWN_STORAGE_BACKEND = "unknown storage backend: "
	UNKNOWN_ORPHAN_POLICY   = "unknown orphan policy: "
	DATABASE_NOT_CONFIGURED = "postgres storage is not configured"
)

var (
	ErrNotFound       = goErrors.New("not found")
	ErrAuthorNotFound = goErrors.New("author not found")
	ErrParentConflict = goErrors.New("parent post belongs to another thread")
	ErrUnknownSort    = goErrors.New("unknown sort type")
	ErrInvalidPage    = goErrors.New("invalid page")
	ErrOrphanPost     = goErrors.New("post references a missing parent")
	ErrCyclicPost     = goErrors.New("post is part of a parent cycle")
	ErrDuplicatePost  = goErrors.New("duplicate post id")
	ErrUserConflict   = goErrors.New("user id or username is taken")
)
