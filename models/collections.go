package models

// Collection names. They match the names the records have always been stored under.
const (
	ContactCollection    = "contacts"
	SuggestionCollection = "suggestions"
	VisitorCollection    = "visitors"
)

// Record is implemented by every persisted submission
type Record interface {
	CollectionName() string
}
