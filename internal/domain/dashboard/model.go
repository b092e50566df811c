package dashboard

// Metrics is the dashboard snapshot returned in one round trip.
type Metrics struct {
	TotalPrograms           int64
	TotalClients            int64
	TotalReviews            int64
	TopProgramsByEnrollment []ProgramEnrollment
}

type ProgramEnrollment struct {
	Name         string
	TotalClients int64
}
