package clubstore

// Document shapes. Field names are stable: changing a tag breaks existing data.

type jsonMember struct {
	Name       string  `json:"name"`
	Surname    string  `json:"surname"`
	NationalID string  `json:"national_id"`
	BirthDate  string  `json:"birth_date"`
	Category   string  `json:"category"`
	MonthlyFee float64 `json:"monthly_fee"`
}

type jsonEmployee struct {
	Name       string  `json:"name"`
	Surname    string  `json:"surname"`
	NationalID string  `json:"national_id"`
	BirthDate  string  `json:"birth_date"`
	Role       string  `json:"role"`
	Salary     float64 `json:"salary"`
}

type jsonActivity struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Days     string       `json:"days"`
	Schedule string       `json:"schedule"`
	Enrolled []jsonMember `json:"enrolled_members"`
}

type jsonFacility struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	ActivityID string `json:"activity_id,omitempty"`
}
