package models

type User struct {
	ID           int    `json:"id"`
	Name         string `json:"nome"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// UserProfile is the aggregated view returned by GET /api/users/{id}:
// the base user row plus every sport the user is registered for.
type UserProfile struct {
	ID       int                 `json:"id"`
	Name     string              `json:"nome"`
	Email    string              `json:"email"`
	Esportes []SportRegistration `json:"esportes"`
}

// SportRegistration is one entry of UserProfile.Esportes. EsporteID is the
// id of the registration row, not of the sport itself.
type SportRegistration struct {
	EsporteID  int    `json:"esporte_id"`
	Name       string `json:"nome"`
	SkillLevel string `json:"nivel_habilidade"`
}
