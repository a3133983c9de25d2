package models

import "time"

type Status string

const StatusNew Status = "New"

// Ticket is the stored support request. The bson tags map ID onto the
// Mongo document key.
type Ticket struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Email       string    `json:"email" bson:"email"`
	Category    string    `json:"category" bson:"category"`
	Description string    `json:"description" bson:"description"`
	Status      Status    `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// Submission is what a caller sends to open a ticket. Field order is the
// order in which missing fields are reported.
type Submission struct {
	Title       string `json:"title" validate:"required,notblank"`
	Email       string `json:"email" validate:"required,notblank"`
	Category    string `json:"category" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
}

// TicketFilter narrows a listing. An empty Email matches every ticket.
type TicketFilter struct {
	Email string
}
