package db

import (
	"context"
	"errors"
	"testing"

	"quickaid/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func ticketDoc(tk models.Ticket) bson.D {
	return bson.D{
		{Key: "_id", Value: tk.ID},
		{Key: "title", Value: tk.Title},
		{Key: "email", Value: tk.Email},
		{Key: "category", Value: tk.Category},
		{Key: "description", Value: tk.Description},
		{Key: "status", Value: string(tk.Status)},
		{Key: "created_at", Value: tk.CreatedAt},
		{Key: "updated_at", Value: tk.UpdatedAt},
	}
}

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		s := NewMongoStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		tk := ticket("id-1", "a@b.com")
		if err := s.Create(context.Background(), &tk); err != nil {
			mt.Fatalf("Create: %v", err)
		}
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		s := NewMongoStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		tk := ticket("id-1", "a@b.com")
		if err := s.Create(context.Background(), &tk); !errors.Is(err, ErrDuplicateID) {
			mt.Fatalf("Create err = %v, want ErrDuplicateID", err)
		}
	})

	mt.Run("create failure", func(mt *mtest.T) {
		s := NewMongoStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    91,
			Name:    "ShutdownInProgress",
			Message: "shutting down",
		}))

		tk := ticket("id-1", "a@b.com")
		err := s.Create(context.Background(), &tk)
		if err == nil || errors.Is(err, ErrDuplicateID) {
			mt.Fatalf("Create err = %v, want storage failure", err)
		}
	})

	mt.Run("list filtered", func(mt *mtest.T) {
		s := NewMongoStore(mt.Coll)
		tk := ticket("id-1", "a@b.com")
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, ticketDoc(tk)))

		got, err := s.List(context.Background(), models.TicketFilter{Email: "a@b.com"})
		if err != nil {
			mt.Fatalf("List: %v", err)
		}
		if len(got) != 1 {
			mt.Fatalf("len(got) = %d, want 1", len(got))
		}
		if got[0].ID != tk.ID || got[0].Email != tk.Email || got[0].Status != models.StatusNew {
			mt.Errorf("got %+v", got[0])
		}
		if !got[0].CreatedAt.Equal(tk.CreatedAt) {
			mt.Errorf("CreatedAt = %v, want %v", got[0].CreatedAt, tk.CreatedAt)
		}
	})

	mt.Run("list empty", func(mt *mtest.T) {
		s := NewMongoStore(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		got, err := s.List(context.Background(), models.TicketFilter{})
		if err != nil {
			mt.Fatalf("List: %v", err)
		}
		if got == nil || len(got) != 0 {
			mt.Errorf("got %#v, want empty slice", got)
		}
	})
}
