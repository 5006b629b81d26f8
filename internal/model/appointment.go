package model

// AppointmentRequest is sent once to the backend to book a visit.
type AppointmentRequest struct {
	DoctorID string `json:"doctorId" form:"doctorId"`
	Date     string `json:"date" form:"date"`
	Time     string `json:"time" form:"time"`
	Symptoms string `json:"symptoms" form:"symptoms"`
}

// DashboardStats summarises a patient's activity.
type DashboardStats struct {
	UpcomingAppointments int `json:"upcomingAppointments"`
	Prescriptions        int `json:"prescriptions"`
	LabReports           int `json:"labReports"`
}
