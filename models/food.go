package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FoodItem is one tracked pantry item. Dates are kept as YYYY-MM-DD
// strings so range filters on expiryDate order chronologically.
type FoodItem struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FoodName         string             `bson:"foodName" json:"foodName"`
	FoodImage        string             `bson:"foodImage,omitempty" json:"foodImage,omitempty"`
	Category         string             `bson:"category" json:"category"`
	Quantity         string             `bson:"quantity" json:"quantity"`
	ExpiryDate       string             `bson:"expiryDate" json:"expiryDate"`
	AddedDate        string             `bson:"addedDate,omitempty" json:"addedDate,omitempty"`
	FoodCreatorEmail string             `bson:"foodCreatorEmail" json:"foodCreatorEmail"`
	Notes            []string           `bson:"notes,omitempty" json:"notes"`
}
