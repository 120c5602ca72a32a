package payroll

const (
	DuplicateAllow  = "allow"
	DuplicateReject = "reject"

	DefaultMonth = "January"
)

var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func ValidMonth(name string) bool {
	for _, month := range Months {
		if month == name {
			return true
		}
	}
	return false
}
