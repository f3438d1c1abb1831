package models

// Event is the base event row. Date and Time are kept as the textual
// "YYYY-MM-DD" / "HH:MM" values the API exchanges, so lexicographic
// comparison against the current date keeps its meaning.
type Event struct {
	ID              int    `json:"id"`
	Name            string `json:"nome"`
	SportID         int    `json:"id_esporte"`
	Date            string `json:"data"`
	Time            string `json:"horario"`
	Location        string `json:"local"`
	MaxParticipants int    `json:"max_participantes"`
	SkillLevel      string `json:"nivel_habilidade"`
	OrganizerID     int    `json:"id_organizador"`
}

// EligibleEvent is a row of the eligibility listing: event fields joined
// with the sport name and the organizer name.
type EligibleEvent struct {
	ID              int    `json:"id"`
	Name            string `json:"nome"`
	Sport           string `json:"esporte"`
	Date            string `json:"data"`
	Time            string `json:"horario"`
	Location        string `json:"local"`
	MaxParticipants int    `json:"max_participantes"`
	SkillLevel      string `json:"nivel_habilidade"`
	Organizer       string `json:"organizador"`
}

// EventDetail is the GET /api/events/byID/{id} shape: the event, the
// organizer name and the current participant count.
type EventDetail struct {
	ID               int    `json:"id"`
	Name             string `json:"nome"`
	SportID          int    `json:"id_esporte"`
	Date             string `json:"data"`
	Time             string `json:"horario"`
	Location         string `json:"local"`
	MaxParticipants  int    `json:"max_participantes"`
	SkillLevel       string `json:"nivel_habilidade"`
	Organizer        string `json:"organizador"`
	ParticipantCount int    `json:"numero_participantes"`
}

// OrganizerEvent is a row of GET /api/events/organizer/{userId}.
type OrganizerEvent struct {
	ID               int    `json:"id"`
	Name             string `json:"nome"`
	SportID          int    `json:"id_esporte"`
	Sport            string `json:"esporte"`
	Date             string `json:"data"`
	Time             string `json:"horario"`
	Location         string `json:"local"`
	MaxParticipants  int    `json:"max_participantes"`
	SkillLevel       string `json:"nivel_habilidade"`
	ParticipantCount int    `json:"numero_participantes"`
}

// UserEvent is a joined event row for the upcoming/subscribed/past
// listings under /api/users/{userId}.
type UserEvent struct {
	SportName       string `json:"esporte_nome"`
	ID              int    `json:"id"`
	Name            string `json:"nome"`
	SportID         int    `json:"id_esporte"`
	Date            string `json:"data"`
	Time            string `json:"horario"`
	Location        string `json:"local"`
	MaxParticipants int    `json:"max_participantes"`
	SkillLevel      string `json:"nivel_habilidade"`
	OrganizerID     int    `json:"id_organizador"`
}
