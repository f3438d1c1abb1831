package models

// UserSport links a user to a sport with a free-text skill level.
// At most one row per (user, sport) pair, enforced by a pre-insert check
// in the service layer rather than a database constraint.
type UserSport struct {
	ID         int    `json:"id"`
	UserID     int    `json:"id_usuario"`
	SportID    int    `json:"id_esporte"`
	SkillLevel string `json:"nivel_habilidade"`
}

// UserSportRow is the listing shape of GET /api/sports/{userId}.
type UserSportRow struct {
	ID         int    `json:"id"`
	SportName  string `json:"esporte_nome"`
	SkillLevel string `json:"nivel_habilidade"`
}
