package grapherror

import (
	"fmt"

	"github.com/kbreese-x/cosmograph/errors"
)

// GraphError is an error raised while loading, validating or serving a graph.
// It carries enough structure for an API error body and for zap fields.
type GraphError struct {
	Err         error
	Category    Category
	Subcategory string
	// Description is shown to clients; empty falls back to the category summary.
	Description string
	// Fields are key/value pairs in the order they were attached.
	Fields []interface{}
}

// New tags err with a category and subcategory
func New(category Category, subcategory string, err error) *GraphError {
	return &GraphError{Err: err, Category: category, Subcategory: subcategory}
}

// Newf is New with a formatted message
func Newf(category Category, subcategory, format string, args ...interface{}) *GraphError {
	return New(category, subcategory, errors.Newf(format, args...))
}

func (e *GraphError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Description
}

func (e *GraphError) Unwrap() error {
	return e.Err
}

// Describe sets the client-facing description
func (e *GraphError) Describe(msg string) *GraphError {
	e.Description = msg
	return e
}

// With attaches a field, replacing an earlier value for the same key
func (e *GraphError) With(key string, value interface{}) *GraphError {
	for i := 0; i+1 < len(e.Fields); i += 2 {
		if e.Fields[i] == key {
			e.Fields[i+1] = value
			return e
		}
	}
	e.Fields = append(e.Fields, key, value)
	return e
}

// Field returns the value attached under key, or nil
func (e *GraphError) Field(key string) interface{} {
	for i := 0; i+1 < len(e.Fields); i += 2 {
		if e.Fields[i] == key {
			return e.Fields[i+1]
		}
	}
	return nil
}

// As extracts a *GraphError from anywhere in err's chain.
func As(err error) (*GraphError, bool) {
	var ge *GraphError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// Matches reports whether err's chain holds a GraphError with the given
// category and subcategory.
func Matches(err error, category Category, subcategory string) bool {
	ge, ok := As(err)
	return ok && ge.Category == category && ge.Subcategory == subcategory
}

// ToMeta formats the error for an API or WebSocket error body. Attached
// fields appear as their own keys unless they collide with the fixed ones.
func (e *GraphError) ToMeta() map[string]string {
	meta := map[string]string{
		"error":       e.Error(),
		"category":    string(e.Category),
		"description": e.Description,
	}
	if meta["description"] == "" {
		meta["description"] = e.Category.Summary()
	}
	if e.Subcategory != "" {
		meta["subcategory"] = e.Subcategory
	}
	for i := 0; i+1 < len(e.Fields); i += 2 {
		key := fmt.Sprint(e.Fields[i])
		if _, taken := meta[key]; !taken {
			meta[key] = fmt.Sprint(e.Fields[i+1])
		}
	}
	return meta
}

// ToLogFields flattens the error into Warnw/Errorw key/value pairs
func (e *GraphError) ToLogFields() []interface{} {
	fields := []interface{}{
		"error_category", e.Category,
		"error", e.Error(),
	}
	if e.Subcategory != "" {
		fields = append(fields, "error_subcategory", e.Subcategory)
	}
	return append(fields, e.Fields...)
}
