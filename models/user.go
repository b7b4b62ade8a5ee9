package models

import "time"

// User is the stored user document. The password hash never leaves the
// server: it has no json tag counterpart and responses use PublicUser.
type User struct {
	ID             string    `bson:"_id" json:"-"`
	Username       string    `bson:"username" json:"-"`
	Email          string    `bson:"email" json:"-"`
	FullName       string    `bson:"full_name,omitempty" json:"-"`
	HashedPassword string    `bson:"hashed_password" json:"-"`
	Disabled       bool      `bson:"disabled" json:"-"`
	CreatedAt      time.Time `bson:"created_at" json:"-"`
}

// PublicUser is the client-facing projection of a User.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
	}
}
