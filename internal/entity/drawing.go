package entity

import "strings"

// Drawing status values. Status is open-ended free text in the registry;
// these are the values the dashboard itself produces or filters on.
const (
	StatusNew         = "New"
	StatusUnderDesign = "Under Design"
	StatusOnHold      = "On-Hold for Missing Info"
)

// RedFlagRevisionMismatch marks a drawing whose linked documents span more
// than one distinct revision. Computed once at creation time from the
// document registry snapshot and never revalidated afterwards.
const RedFlagRevisionMismatch = "Revision Mismatch"

// Drawing is one row of the drawing registry. Rows are append-only: there is
// no update or delete path. Drawing numbers are the natural identifier but
// uniqueness is not enforced.
type Drawing struct {
	DrawingNumber string   `json:"drawing_number"`
	Title         string   `json:"title"`
	Discipline    string   `json:"discipline"`
	Documents     []string `json:"documents"`
	Designer      string   `json:"designer"`
	Drafters      []string `json:"drafters"`
	Checker       string   `json:"checker,omitempty"`
	Lead          string   `json:"lead,omitempty"`
	Status        string   `json:"status"`
	RFINumber     string   `json:"rfi_number,omitempty"`
	RedFlag       string   `json:"red_flag,omitempty"`
	Location      string   `json:"location"`
}

// AssignedTo reports whether the drawing is assigned to the named user:
// equal to designer, checker or lead, or a member of the drafters set.
func (d *Drawing) AssignedTo(user string) bool {
	if user == "" {
		return false
	}
	if d.Designer == user || d.Checker == user || d.Lead == user {
		return true
	}
	for _, drafter := range d.Drafters {
		if drafter == user {
			return true
		}
	}
	return false
}

// JoinList serializes a set-valued field (documents, drafters) to the
// comma-joined form used in the registry workbook.
func JoinList(values []string) string {
	return strings.Join(values, ", ")
}

// SplitList parses a comma-joined field back into its values, dropping
// surrounding whitespace and empty entries.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}
