package domain

import "github.com/google/uuid"

// Version is the server version reported by the instance endpoint.
const Version = "1.0.0"

// Instance is the singleton record describing this server installation.
// Created on first boot; the ID is a random UUID that survives restarts.
type Instance struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Timestamps
}

// NewInstance creates an instance record with a fresh UUID.
func NewInstance(name string) *Instance {
	inst := &Instance{
		ID:      uuid.NewString(),
		Name:    name,
		Version: Version,
	}
	inst.InitTimestamps()
	return inst
}
