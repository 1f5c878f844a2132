package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto e único, usado com um prefixo de
// entidade ("sale_", "cust_") para manter os IDs legíveis no slot persistido.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 10)
}
