package models

import "time"

type User struct {
	UserID        string    `json:"id" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email" bson:"email"`
	FirstName     string    `json:"first_name" bson:"first_name"`
	LastName      string    `json:"last_name" bson:"last_name"`
	Password      string    `json:"-" bson:"password"`
	Role          []string  `json:"-" bson:"role"`
	CreatedAt     time.Time `json:"-" bson:"created_at"`
	LastLogin     time.Time `json:"-" bson:"last_login"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
}

// UserProfile is the listing/detail view of a user, relative to the caller.
type UserProfile struct {
	UserID       string `json:"id" bson:"userid"`
	Username     string `json:"username" bson:"username"`
	Email        string `json:"email" bson:"email"`
	FirstName    string `json:"first_name" bson:"first_name"`
	LastName     string `json:"last_name" bson:"last_name"`
	IsSubscribed bool   `json:"is_subscribed" bson:"-"`
}

// AuthorListing is a profile plus that author's recipes, used by the
// subscription listing and subscribe responses.
type AuthorListing struct {
	UserProfile
	Recipes      []ShortRecipe `json:"recipes"`
	RecipesCount int           `json:"recipes_count"`
}

type Subscription struct {
	SubscriberID string `json:"subscriber" bson:"subscriberid"`
	AuthorID     string `json:"author" bson:"authorid"`
}

func (u User) Profile() UserProfile {
	return UserProfile{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
