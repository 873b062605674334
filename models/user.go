package models

// Club is one entry in a player's club history.
type Club struct {
	Name string `json:"name" dynamodbav:"name,omitempty"`
}

// User is a player account as stored in the user table. The password field
// holds the bcrypt hash and is never serialized into responses.
type User struct {
	ID                string `json:"id" dynamodbav:"id"`
	Name              string `json:"name,omitempty" dynamodbav:"name,omitempty"`
	Email             string `json:"email,omitempty" dynamodbav:"email,omitempty"`
	Password          string `json:"-" dynamodbav:"password,omitempty"`
	ProfilePicture    string `json:"profilePicture,omitempty" dynamodbav:"profilePicture,omitempty"`
	Position          string `json:"position,omitempty" dynamodbav:"position,omitempty"`
	CurrentTeam       string `json:"currentTeam,omitempty" dynamodbav:"currentTeam,omitempty"`
	YearsOfExperience int    `json:"yearsOfExperience,omitempty" dynamodbav:"yearsOfExperience,omitempty"`
	PreviousClubs     []Club `json:"previousClubs,omitempty" dynamodbav:"previousClubs,omitempty"`
	Achievements      string `json:"achievements,omitempty" dynamodbav:"achievements,omitempty"`
	CreatedAt         string `json:"createdAt,omitempty" dynamodbav:"createdAt,omitempty"`
	UpdatedAt         string `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
}

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Name              string `json:"name" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8"`
	ProfilePicture    string `json:"profilePicture,omitempty"`
	Position          string `json:"position,omitempty"`
	CurrentTeam       string `json:"currentTeam,omitempty"`
	YearsOfExperience int    `json:"yearsOfExperience,omitempty"`
	PreviousClubs     []Club `json:"previousClubs,omitempty"`
	Achievements      string `json:"achievements,omitempty"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is a sparse partial update over the user schema. Only
// non-nil fields are written; unknown attribute names cannot be injected
// because the update expression is built from this fixed set of columns.
type UpdateUserRequest struct {
	Name              *string `json:"name,omitempty"`
	ProfilePicture    *string `json:"profilePicture,omitempty"`
	Position          *string `json:"position,omitempty"`
	CurrentTeam       *string `json:"currentTeam,omitempty"`
	YearsOfExperience *int    `json:"yearsOfExperience,omitempty"`
	PreviousClubs     []Club  `json:"previousClubs,omitempty"`
	Achievements      *string `json:"achievements,omitempty"`
}
