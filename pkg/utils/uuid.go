package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o identificador curto usado nas linhas de visitas,
// planos e fotografias de compliance
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
