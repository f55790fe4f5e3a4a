package service

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/aokblast/sicxeasm/config"
)

// Session wraps one Assemble run with an identity and timestamp, for
// callers (the HTTP API) that need to refer back to a past run.
type Session struct {
	ID        string
	Filename  string
	CreatedAt time.Time
	Result    *Result
}

// NewSession assembles source under filename and wraps the result in a
// freshly identified Session.
func NewSession(source []byte, filename string, cfg *config.Config, onProgress ProgressFunc) (*Session, error) {
	id, err := GenerateSessionID()
	if err != nil {
		return nil, err
	}
	return NewSessionWithID(id, source, filename, cfg, onProgress)
}

// NewSessionWithID assembles source under filename using a
// caller-supplied session ID, so the ID is known before assembly
// starts and can be embedded in progress events as they are emitted.
func NewSessionWithID(id string, source []byte, filename string, cfg *config.Config, onProgress ProgressFunc) (*Session, error) {
	result, err := Assemble(source, filename, cfg, onProgress)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:        id,
		Filename:  filename,
		CreatedAt: time.Now(),
		Result:    result,
	}, nil
}

// GenerateSessionID returns a fresh random session identifier.
func GenerateSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
