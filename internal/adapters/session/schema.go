package session

import (
	"fmt"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int             `toml:"version"`
	AccessToken string          `toml:"access_token"`
	User        *userInfoSchema `toml:"user,omitempty"`
}

type userInfoSchema struct {
	Email   string `toml:"email"`
	Name    string `toml:"name"`
	Picture string `toml:"picture,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(session domain.Session) fileSchema {
	file := fileSchema{
		Version:     currentSchemaVersion,
		AccessToken: session.AccessToken,
	}
	if session.User != nil {
		file.User = &userInfoSchema{
			Email:   session.User.Email,
			Name:    session.User.Name,
			Picture: session.User.Picture,
		}
	}

	return file
}

func fromSchema(file fileSchema) domain.Session {
	session := domain.Session{AccessToken: file.AccessToken}
	if file.User != nil {
		session.User = &domain.UserInfo{
			Email:   file.User.Email,
			Name:    file.User.Name,
			Picture: file.User.Picture,
		}
	}

	return session
}
