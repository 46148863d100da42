package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleConsumer = "consumer"
	RoleProducer = "producer"

	FarmingOrganic   = "organic"
	FarmingInorganic = "inorganic"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// Product is owned by the producer whose email it carries. OwnerID is the
// same owner by reference.
type Product struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OwnerID           primitive.ObjectID `bson:"owner_id,omitempty" json:"owner_id,omitempty"`
	Username          string             `bson:"username" json:"username"`
	ProductName       string             `bson:"product_name" json:"product_name"`
	MobileNumber      string             `bson:"mobile_number" json:"mobile_number"`
	Email             string             `bson:"email" json:"email"`
	Price             string             `bson:"price,omitempty" json:"price,omitempty"`
	Address           string             `bson:"address" json:"address"`
	Farming           string             `bson:"farming" json:"farming"`
	StockAvailability string             `bson:"stock_availability" json:"stock_availability"`
}

// Message is a buyer's comment to a producer about one product. It is never
// updated after insert.
type Message struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ConsumerMail string             `bson:"Consumer_mail" json:"Consumer_mail"`
	ProducerMail string             `bson:"Producer_mail" json:"Producer_mail"`
	ProductID    primitive.ObjectID `bson:"product_id,omitempty" json:"product_id,omitempty"`
	ProductName  string             `bson:"product_name" json:"product_name"`
	Message      string             `bson:"message" json:"message"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// ProductChanges holds the mutable product fields; nil leaves a field as is.
type ProductChanges struct {
	ProductName       *string
	MobileNumber      *string
	Price             *string
	Address           *string
	Farming           *string
	StockAvailability *string
}

// Identity is what a session knows about its caller.
type Identity struct {
	UserID   string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (i Identity) IsProducer() bool { return i.Role == RoleProducer }
func (i Identity) IsConsumer() bool { return i.Role == RoleConsumer }

func (u *User) Identity() Identity {
	return Identity{
		UserID:   u.ID.Hex(),
		Email:    u.Email,
		Username: u.Username,
		Role:     u.Role,
	}
}
