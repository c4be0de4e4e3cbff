package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// GenerateID gera um identificador curto e legível para correlacionar execuções nos logs
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
