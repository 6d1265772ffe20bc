package types

// Status is a type for the lifecycle status of a persisted row.
// Config rows (durations, rates, discount rules) are archived rather than
// hard-deleted once referenced by rental history.
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusDeleted   Status = "deleted"
)
