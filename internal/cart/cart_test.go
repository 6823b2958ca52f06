package cart_test

import (
	"testing"

	"plantshop_backend/internal/cart"
	"plantshop_backend/internal/models"
)

func line(id string, price float64, qty int) models.CartItem {
	return models.CartItem{ProductID: id, Name: "cây " + id, Price: price, Quantity: qty, Image: id + ".jpg"}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in      any
		want    float64
		wantErr bool
	}{
		{"200.000đ", 200000, false},
		{"1.250.000 đ", 1250000, false},
		{"35000", 35000, false},
		{float64(150000), 150000, false},
		{"đ", 0, true},
		{"không có giá", 0, true},
		{nil, 0, true},
		{true, 0, true},
	}
	for _, tc := range cases {
		got, err := cart.ParsePrice(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePrice(%v): muốn lỗi, nhận %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePrice(%v): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePrice(%v) = %v, muốn %v", tc.in, got, tc.want)
		}
	}
}

func TestMergeSumsQuantityForSameProduct(t *testing.T) {
	items := cart.Merge(nil, []models.CartItem{line("a", 200000, 2)})
	items = cart.Merge(items, []models.CartItem{line("a", 200000, 3)})

	if len(items) != 1 {
		t.Fatalf("muốn 1 dòng, nhận %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("muốn quantity 5, nhận %d", items[0].Quantity)
	}
	if total := cart.Total(items); total != 200000*5 {
		t.Fatalf("muốn total %v, nhận %v", 200000*5, total)
	}
}

func TestMergeAppendsNewProducts(t *testing.T) {
	items := cart.Merge([]models.CartItem{line("a", 100, 1)}, []models.CartItem{line("b", 200, 2)})
	if len(items) != 2 {
		t.Fatalf("muốn 2 dòng, nhận %d", len(items))
	}
	if items[1].ProductID != "b" {
		t.Fatalf("dòng mới phải nằm cuối, nhận %q", items[1].ProductID)
	}
	if total := cart.Total(items); total != 100+400 {
		t.Fatalf("muốn total 500, nhận %v", total)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	items := []models.CartItem{line("a", 100, 2), line("b", 200, 1)}

	items, ok := cart.SetQuantity(items, "a", 0)
	if !ok {
		t.Fatal("SetQuantity phải tìm thấy dòng a")
	}
	if len(items) != 1 || items[0].ProductID != "b" {
		t.Fatalf("muốn còn lại [b], nhận %+v", items)
	}
}

func TestSetQuantityOverwrites(t *testing.T) {
	items := []models.CartItem{line("a", 100, 2)}

	items, ok := cart.SetQuantity(items, "a", 7)
	if !ok || items[0].Quantity != 7 {
		t.Fatalf("muốn quantity 7, nhận %+v", items)
	}
}

func TestSetQuantityUnknownProduct(t *testing.T) {
	items := []models.CartItem{line("a", 100, 2)}

	got, ok := cart.SetQuantity(items, "x", 3)
	if ok {
		t.Fatal("SetQuantity không được báo tìm thấy dòng x")
	}
	if len(got) != 1 || got[0].Quantity != 2 {
		t.Fatalf("giỏ phải giữ nguyên, nhận %+v", got)
	}
}

func TestRemoveAbsentProductKeepsCart(t *testing.T) {
	items := []models.CartItem{line("a", 100, 1), line("b", 200, 2)}

	got := cart.Remove(items, "x")
	if len(got) != 2 {
		t.Fatalf("giỏ phải giữ nguyên, nhận %+v", got)
	}
}

func TestRemovePresentProduct(t *testing.T) {
	items := []models.CartItem{line("a", 100, 1), line("b", 200, 2)}

	got := cart.Remove(items, "a")
	if len(got) != 1 || got[0].ProductID != "b" {
		t.Fatalf("muốn còn lại [b], nhận %+v", got)
	}
}

func TestIDs(t *testing.T) {
	ids := cart.IDs([]models.CartItem{line("a", 1, 1), line("b", 2, 1)})
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("IDs sai: %v", ids)
	}
}

// Đặt [a, b] từ giỏ [a, b, c] thì giỏ còn đúng [c]: lọc theo danh sách
// id đã đặt, giống điều kiện $pull + $in phía Mongo.
func TestPullOrderedLinesLeavesRest(t *testing.T) {
	items := []models.CartItem{line("a", 100, 1), line("b", 200, 2), line("c", 300, 3)}
	ordered := cart.IDs(items[:2])

	for _, id := range ordered {
		items = cart.Remove(items, id)
	}
	if len(items) != 1 || items[0].ProductID != "c" {
		t.Fatalf("muốn còn lại [c], nhận %+v", items)
	}
}
