package models

import (
	"github.com/google/uuid"
)

// SearchType defines the field an admin user search matches against
type SearchType string

const (
	SearchTypeFirstName SearchType = "first_name"
	SearchTypeLastName  SearchType = "last_name"
	SearchTypeName      SearchType = "name"
	SearchTypeEmail     SearchType = "email"
)

// UserSearchResult represents a single user in admin search results
type UserSearchResult struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Role        string    `json:"role"`
	CreatedAt   string    `json:"createdAt"`
	LastLoginAt *string   `json:"lastLoginAt,omitempty"`
}
