package directory

// DefaultDepartment is assigned when a record is created without one.
const DefaultDepartment = "N/A"

type Employee struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	BankDetails string `json:"bankDetails,omitempty"`
	TaxNumber   string `json:"taxNumber,omitempty"`
	PFNumber    string `json:"pfNumber,omitempty"`
	UTINumber   string `json:"utiNumber,omitempty"`
}

// Merge overlays update onto base. Non-empty fields from update win,
// fields left blank in update keep the value already on record.
// The ID never changes.
func Merge(base, update Employee) Employee {
	merged := base
	if update.Name != "" {
		merged.Name = update.Name
	}
	if update.Department != "" {
		merged.Department = update.Department
	}
	if update.BankDetails != "" {
		merged.BankDetails = update.BankDetails
	}
	if update.TaxNumber != "" {
		merged.TaxNumber = update.TaxNumber
	}
	if update.PFNumber != "" {
		merged.PFNumber = update.PFNumber
	}
	if update.UTINumber != "" {
		merged.UTINumber = update.UTINumber
	}
	return merged
}

// Upsert replaces the record matching emp.ID in place, or appends a new
// record. The directory never holds two records with the same ID.
func Upsert(employees []Employee, emp Employee) []Employee {
	for i, existing := range employees {
		if existing.ID == emp.ID {
			employees[i] = Merge(existing, emp)
			return employees
		}
	}
	if emp.Department == "" {
		emp.Department = DefaultDepartment
	}
	return append(employees, emp)
}

// Index maps employees by ID. When the same ID appears twice the first
// occurrence wins, matching the directory's lookup order.
func Index(employees []Employee) map[string]Employee {
	index := make(map[string]Employee, len(employees))
	for _, emp := range employees {
		if _, ok := index[emp.ID]; !ok {
			index[emp.ID] = emp
		}
	}
	return index
}
