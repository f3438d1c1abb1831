package models

// Participation links a user to an event. The organizer's own enrollment
// is a row like any other. Duplicate (user, event) rows are permitted.
type Participation struct {
	ID      int `json:"id"`
	UserID  int `json:"id_usuario"`
	EventID int `json:"id_evento"`
}

// ParticipationDetail is a row of GET /api/participations/{id}: the
// participation joined with the user, the event and the event's current
// participant count. Rows where the user organizes the event are excluded.
type ParticipationDetail struct {
	ID               int    `json:"participacao_id"`
	UserID           int    `json:"id_usuario"`
	UserName         string `json:"usuario_nome"`
	EventID          int    `json:"evento_id"`
	EventName        string `json:"evento_nome"`
	Location         string `json:"local"`
	Date             string `json:"data"`
	Time             string `json:"horario"`
	ParticipantCount int    `json:"numero_participantes"`
}

// UserParticipation is the compact shape of GET /api/users/{userId}/participations.
type UserParticipation struct {
	ID        int    `json:"participacao_id"`
	EventName string `json:"evento_nome"`
	Date      string `json:"data"`
	Location  string `json:"local"`
}
