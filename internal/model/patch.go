package model

import "encoding/json"

// OptString is a tri-state string for partial updates: absent from the
// JSON body, explicitly null, or set to a value.  A plain *string
// cannot tell the first two apart, which matters for clearing a
// course description without touching it on every update.
type OptString struct {
	Set   bool    // field was present in the input
	Value *string // nil when the input was null
}

// UnmarshalJSON is only invoked when the field is present, so Set is
// flipped unconditionally and Value stays nil for explicit nulls.
func (o *OptString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// CoursePatch carries the fields of an update request.  Nil pointer
// means "leave unchanged"; Description uses OptString because null is
// a meaningful value for it.  An empty patch is still a valid update
// and bumps the course's UpdatedAt.
type CoursePatch struct {
	Title       *string
	Description OptString
	Status      *string
}
