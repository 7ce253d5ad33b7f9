package userstore

import (
	"context"

	"github.com/dmitrymomot/pushfan/pkg/subscription"
)

// User is the registration document.
type User struct {
	ID           string                  `json:"id" bson:"_id"`
	PK           PartitionKey            `json:"pk" bson:"pk"`
	Subscription *subscription.Candidate `json:"subscription" bson:"subscription"`
	FiKeys       []FiKey                 `json:"fiKeys" bson:"fi_keys"`
}

// PartitionKey identifies the owning application user.
type PartitionKey struct {
	UserID string `json:"userId" bson:"user_id"`
}

// FiKey holds access to one linked financial institution item.
// AccessToken is a credential and must not be logged.
type FiKey struct {
	AccessToken string `json:"AccessToken" bson:"access_token"`
	ItemID      string `json:"ItemId" bson:"item_id"`
	Cursor      string `json:"Cursor" bson:"cursor"`
}

// Store saves user documents. Save replaces any document with the same ID.
type Store interface {
	Save(ctx context.Context, u User) (User, error)
}
