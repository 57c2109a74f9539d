package waitlist

import "time"

// Column names of the waitlist worksheet header.
const (
	ColumnName      = "Name"
	ColumnEmail     = "Email"
	ColumnTimestamp = "Timestamp"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// SuccessMessage is returned with every accepted submission.
const SuccessMessage = "Data submitted successfully"

// SubmitRequest is the JSON body of POST /api/submit. Pointers distinguish a
// missing field from an empty one.
type SubmitRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Signup is a validated submission, values exactly as submitted.
type Signup struct {
	Name  string
	Email string
}

// Record is the row appended to the spreadsheet.
type Record struct {
	Name      string
	Email     string
	Timestamp time.Time
}

// Row maps the record onto worksheet columns.
func (r Record) Row() map[string]string {
	return map[string]string{
		ColumnName:      r.Name,
		ColumnEmail:     r.Email,
		ColumnTimestamp: r.Timestamp.UTC().Format(TimestampLayout),
	}
}

// SubmitResponse is the body of a successful submission.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
