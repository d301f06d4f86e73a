package domain

import "time"

// Specialty é a especialidade médica de um doutor
type Specialty string

const (
	SpecialtyGeneralist    Specialty = "generalist"
	SpecialtyCardiologist  Specialty = "cardiologist"
	SpecialtyDermatologist Specialty = "dermatologist"
	SpecialtyPediatrician  Specialty = "pediatrician"
	SpecialtyPsychiatrist  Specialty = "psychiatrist"
	SpecialtyGynecologist  Specialty = "gynecologist"
)

type Doctor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty Specialty `json:"specialty"`
	BrickID   string    `json:"brick_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Brick é a menor unidade de território de vendas; bricks se agrupam em setores
type Brick struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type UpdateDoctorRequest struct {
	ID        string     `json:"id"`
	Name      *string    `json:"name"`
	Specialty *Specialty `json:"specialty"`
	BrickID   *string    `json:"brick_id"`
}
