package employees

import "strconv"

const ColumnNum = "num"

// User is one employee record of the spreadsheet. Num is the key held in the
// first column. The numeric fields are pointers so an absent field is told
// apart from a zero.
type User struct {
	Num              *int64 `json:"num" validate:"required,gte=0"`
	Name             string `json:"Name" validate:"required"`
	Job              string `json:"Job" validate:"required"`
	Address          string `json:"Address" validate:"required"`
	RequestedTimeOff *int64 `json:"RequestedTimeOff" validate:"required,gte=0"`
}

var UserColumns = []string{ColumnNum, "Name", "Job", "Address", "RequestedTimeOff"}

func (u User) Key() string {
	return strconv.FormatInt(deref(u.Num), 10)
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}

	return *v
}

// ParseID reads a path id the way the sheet stores it, so "007" is user 7.
func ParseID(raw string) (string, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n, 10), nil
}

func (u User) Record() map[string]any {
	return map[string]any{
		ColumnNum:          deref(u.Num),
		"Name":             u.Name,
		"Job":              u.Job,
		"Address":          u.Address,
		"RequestedTimeOff": deref(u.RequestedTimeOff),
	}
}

// FieldUpdate sets one column of a user.
type FieldUpdate struct {
	ColumnName string `json:"column_name" validate:"required"`
	NewValue   string `json:"new_value"`
}
