package user

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"plantshop_backend/internal/models"
)

func TestCartUpsertInsertsPreassignedID(t *testing.T) {
	doc := models.Cart{
		ID:        primitive.NewObjectID(),
		UserID:    "u1",
		Items:     []models.CartItem{{ProductID: "p1", Name: "Sen đá", Price: 200000, Quantity: 1}},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	update := cartUpsert(doc)

	onInsert, ok := update["$setOnInsert"].(bson.M)
	if !ok {
		t.Fatal("thiếu $setOnInsert")
	}
	id, ok := onInsert["_id"].(primitive.ObjectID)
	if !ok {
		t.Fatal("$setOnInsert thiếu _id")
	}
	if id.IsZero() {
		t.Fatal("_id chèn vào phải được sinh trước, không được là ObjectID rỗng")
	}
	if id != doc.ID {
		t.Fatalf("_id trong update (%s) khác _id trả về client (%s)", id.Hex(), doc.ID.Hex())
	}
	if onInsert["createdAt"] != doc.CreatedAt {
		t.Fatal("$setOnInsert thiếu createdAt")
	}
}

func TestCartUpsertNeverSetsIDOnExistingCart(t *testing.T) {
	doc := models.Cart{ID: primitive.NewObjectID(), UserID: "u1"}

	set, ok := cartUpsert(doc)["$set"].(bson.M)
	if !ok {
		t.Fatal("thiếu $set")
	}
	if _, found := set["_id"]; found {
		t.Fatal("$set không được chứa _id, Mongo từ chối sửa _id của document có sẵn")
	}
	for _, key := range []string{"userId", "items", "totalPrice", "updatedAt"} {
		if _, found := set[key]; !found {
			t.Fatalf("$set thiếu trường %s", key)
		}
	}
}
