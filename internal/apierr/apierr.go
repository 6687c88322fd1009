package apierr

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// Kind names a failure category. Every error that reaches the HTTP boundary
// carries exactly one Kind, and each Kind has a fixed status and message.
type Kind int

const (
	KindUnknown Kind = iota
	KindMalformedIdentifier
	KindMissingField
	KindInvalidFieldType
	KindArticleNotFound
	KindUserNotFound
	KindInvalidTopicQuery
	KindRouteNotFound
	KindInternal
)

// Error is a failure as a value: a kind plus the status and message the
// client will see. It crosses the service and repository layers unchanged
// and is rendered exactly once, by the terminal error middleware.
type Error struct {
	Kind    Kind   `json:"-"`
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// MalformedIdentifier reports a path parameter that should have been a
// positive integer.
func MalformedIdentifier() *Error {
	return &Error{Kind: KindMalformedIdentifier, Status: http.StatusBadRequest, Message: "Bad Request"}
}

// MissingField reports a required body field that was absent.
func MissingField() *Error {
	return &Error{Kind: KindMissingField, Status: http.StatusBadRequest, Message: "Bad Request"}
}

// InvalidFieldType reports a body field present but of the wrong type.
func InvalidFieldType() *Error {
	return &Error{Kind: KindInvalidFieldType, Status: http.StatusBadRequest, Message: "Bad Request"}
}

// ArticleNotFound reports a well-formed article id with no matching row.
// The two historical call sites used different capitalisation; both are
// preserved via the message argument.
func ArticleNotFound(message string) *Error {
	return &Error{Kind: KindArticleNotFound, Status: http.StatusNotFound, Message: message}
}

// Messages for the two article-not-found call sites.
const (
	MsgArticleDoesNotExist      = "Article does not exist"
	MsgArticleDoesNotExistTitle = "Article Does Not Exist"
)

// CommentNotFound reports a comment id that matched no row on delete.
// Upstream reused the article wording here; kept verbatim for
// compatibility even though the resource is a comment.
func CommentNotFound() *Error {
	return &Error{Kind: KindArticleNotFound, Status: http.StatusNotFound, Message: MsgArticleDoesNotExistTitle}
}

// UserNotFound reports a referenced username with no matching row.
func UserNotFound() *Error {
	return &Error{Kind: KindUserNotFound, Status: http.StatusNotFound, Message: "User Does Not Exist"}
}

// InvalidTopicQuery reports a topic filter naming no known topic.
func InvalidTopicQuery() *Error {
	return &Error{Kind: KindInvalidTopicQuery, Status: http.StatusNotFound, Message: "Invalid Query"}
}

// RouteNotFound reports an unmatched method+path.
func RouteNotFound() *Error {
	return &Error{Kind: KindRouteNotFound, Status: http.StatusNotFound, Message: "Endpoint Not Found"}
}

// Internal is the fallback for failures outside the taxonomy.
func Internal() *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: "Internal Server Error"}
}

// Postgres SQLSTATE codes normalised to 400 Bad Request: input that slipped
// past the early validation path and tripped a store constraint must look
// identical to input the early path rejected.
const (
	pqInvalidTextRepresentation = "22P02"
	pqNotNullViolation          = "23502"
	pqForeignKeyViolation       = "23503"
)

// Classify maps any error to the taxonomy. Classifiers run in a fixed
// order: already-typed errors pass through first, then store-level
// format/integrity violations, then bare no-rows results, then the
// internal fallback.
func Classify(err error) *Error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqInvalidTextRepresentation:
			return MalformedIdentifier()
		case pqNotNullViolation:
			return MissingField()
		case pqForeignKeyViolation:
			return &Error{Kind: KindInvalidFieldType, Status: http.StatusBadRequest, Message: "Bad Request"}
		}
		return Internal()
	}

	// A repository that forgot to translate no-rows still resolves to a
	// not-found rather than a 500.
	if errors.Is(err, sql.ErrNoRows) {
		return &Error{Kind: KindArticleNotFound, Status: http.StatusNotFound, Message: MsgArticleDoesNotExist}
	}

	return Internal()
}
