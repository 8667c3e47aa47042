package domain

type Location struct {
	ID             int32  `json:"location_id"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zip_code"`
	Phone          string `json:"phone,omitempty"`
	OperatingHours string `json:"operating_hours,omitempty"`
	ManagerID      *int32 `json:"manager_id,omitempty"`
}

type LocationCreate struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zip_code"`
	Phone          string `json:"phone,omitempty"`
	OperatingHours string `json:"operating_hours,omitempty"`
	ManagerID      *int32 `json:"manager_id,omitempty"`
}

type LocationWithEmployees struct {
	Location
	Manager   *Employee  `json:"manager,omitempty"`
	Employees []Employee `json:"employees"`
	Vehicles  []Vehicle  `json:"vehicles"`
}
