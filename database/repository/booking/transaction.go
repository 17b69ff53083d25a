package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"marketplace/models"
)

// TryReserve runs the check-then-write of a reservation inside a single
// mongo transaction. The availability lookup inside the transaction
// catches slots deleted since the caller last read them; the partial
// unique index on (availability_id, CONFIRMED) is what actually
// serializes concurrent attempts for the same slot — the insert of every
// loser fails with a duplicate key, which surfaces as slotTaken.
func (r *MongoBookingRepo) TryReserve(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var reserveErr error

	txnFn := func(sc mongo.SessionContext) error {
		err := r.availColl.FindOne(sc, bson.M{"id": booking.AvailabilityID}).Err()
		if err == mongo.ErrNoDocuments {
			reserveErr = models.NewStaleReferenceError(
				fmt.Sprintf("availability %s no longer exists", booking.AvailabilityID))
			return reserveErr
		}
		if err != nil {
			return fmt.Errorf("availability lookup failed: %w", err)
		}

		now := time.Now().UTC()
		booking.Status = models.BookingStatusConfirmed
		booking.CreatedAt = now
		booking.UpdatedAt = now

		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				reserveErr = models.NewSlotTakenError(
					fmt.Sprintf("availability %s is already booked", booking.AvailabilityID))
				return reserveErr
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
	if err != nil {
		if reserveErr != nil {
			return reserveErr
		}
		return fmt.Errorf("reservation transaction failed: %w", err)
	}
	return nil
}
