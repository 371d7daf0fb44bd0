// Package notify models the user-facing notices the storefront shows after an
// action. Severity (how it looks) and Category (what happened) are independent,
// so "item removed" can be informational without borrowing the error style.
package notify

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Category string

const (
	CategoryAdded      Category = "added"
	CategoryUpdated    Category = "updated"
	CategoryRemoved    Category = "removed"
	CategoryOrder      Category = "order"
	CategoryCancelled  Category = "cancelled"
	CategoryValidation Category = "validation"
	CategoryAuth       Category = "auth"
	CategoryFailure    Category = "failure"
)

type Notification struct {
	Severity Severity `json:"severity"`
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

type List []Notification

func (l *List) Add(sev Severity, cat Category, msg string) {
	*l = append(*l, Notification{Severity: sev, Category: cat, Message: msg})
}

func (l *List) Success(cat Category, msg string) { l.Add(SeveritySuccess, cat, msg) }
func (l *List) Info(cat Category, msg string)    { l.Add(SeverityInfo, cat, msg) }
func (l *List) Error(cat Category, msg string)   { l.Add(SeverityError, cat, msg) }

// HasFailure reports whether any notice is an error.
func (l List) HasFailure() bool {
	for _, n := range l {
		if n.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Of returns the notices in the given category.
func (l List) Of(cat Category) List {
	var out List
	for _, n := range l {
		if n.Category == cat {
			out = append(out, n)
		}
	}
	return out
}
