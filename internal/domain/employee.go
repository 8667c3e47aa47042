package domain

type Employee struct {
	ID         int32     `json:"employee_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	HireDate   Timestamp `json:"hire_date"`
	Salary     *Cents    `json:"salary,omitempty"`
	LocationID *int32    `json:"location_id,omitempty"`
	ManagerID  *int32    `json:"manager_id,omitempty"`
	IsActive   bool      `json:"is_active"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type EmployeeCreate struct {
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	HireDate   Date      `json:"hire_date"`
	Salary     *Cents    `json:"salary,omitempty"`
	LocationID *int32    `json:"location_id,omitempty"`
	ManagerID  *int32    `json:"manager_id,omitempty"`
	IsActive   *bool     `json:"is_active,omitempty"`
}
