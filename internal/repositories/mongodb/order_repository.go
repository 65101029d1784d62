package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"premstore/internal/models"
	"premstore/internal/repositories/interfaces"
	"premstore/internal/utils"
)

type orderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) interfaces.OrderRepository {
	return &orderRepository{
		collection: db.Collection("orders"),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("order %s: %w", order.OrderID, interfaces.ErrDuplicate)
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *orderRepository) GetByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("order %s: %w", orderID, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

func (r *orderRepository) GetAll(ctx context.Context, params *utils.PaginationParams) ([]*models.Order, int64, error) {
	filter := bson.M{}
	if params.Search != "" {
		searchFilter := params.GetSearchFilter([]string{"order_id", "customer_email", "customer_whatsapp"})
		if len(searchFilter) > 0 {
			filter = searchFilter
		}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*models.Order
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			return nil, 0, fmt.Errorf("failed to decode order: %w", err)
		}
		orders = append(orders, &order)
	}

	return orders, total, nil
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, orderID string, status models.PaymentStatus) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"order_id": orderID},
		bson.M{"$set": bson.M{
			"payment_status": status,
			"updated_at":     time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("order %s: %w", orderID, interfaces.ErrNotFound)
	}

	return nil
}

func (r *orderRepository) UpdateInviteStatus(ctx context.Context, orderID string, status models.InviteStatus, cookieAdminEmail string) error {
	set := bson.M{
		"invite_status": status,
		"updated_at":    time.Now(),
	}
	unset := bson.M{}

	if status == models.InviteStatusSuccess {
		set["invited_at"] = time.Now()
	} else {
		unset["invited_at"] = ""
	}

	if cookieAdminEmail != "" {
		set["cookie_admin_email"] = cookieAdminEmail
	} else {
		unset["cookie_admin_email"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"order_id": orderID}, update)
	if err != nil {
		return fmt.Errorf("failed to update invite status: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("order %s: %w", orderID, interfaces.ErrNotFound)
	}

	return nil
}
