package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength     = 6
)

// GenerateID gera o identificador curto usado como chave primária de
// lojas e contas de anúncio
func GenerateID() (string, error) {
	return gonanoid.Generate(idCharacters, idLength)
}
