package persistence

import "fortress-client/models"

// Storage defines the interface for client preference persistence. Only
// preferences live here; world state always comes fresh from the server.
type Storage interface {
	LoadProfile() (*models.Profile, error)
	SaveProfile(profile *models.Profile) error
	Close() error
}
