package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const sessionAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSessionID returns a short URL-safe identifier for coach chat
// sessions.
func GenerateSessionID() (string, error) {
	return gonanoid.Generate(sessionAlphabet, 6)
}
